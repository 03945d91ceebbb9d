package handlers

import (
	"errors"
	"sync"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidationsOnce sync.Once

// registerValidations installs the custom `money` tag on gin's validator engine and makes JSON
// numbers decode as json.Number, so amounts reach the ledger without float rounding.
func registerValidations() error {
	var err error
	registerValidationsOnce.Do(func() {
		binding.EnableDecoderUseNumber = true
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		err = v.RegisterValidation("money", validateMoney)
	})
	return err
}

// validateMoney accepts anything domain.Normalize can parse. Sign is left to the ledger.
func validateMoney(fl validator.FieldLevel) bool {
	_, err := domain.Normalize(fl.Field().Interface())
	return err == nil
}
