package service

import (
	"errors"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/limbo/momentum/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("cognitive_load", func(fl validator.FieldLevel) bool {
			return slices.Contains(entity.CognitiveLoads(), fl.Field().String())
		})
		validate.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
			return entity.ValidStatus(fl.Field().String())
		})
	})
}

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	return nil
}
