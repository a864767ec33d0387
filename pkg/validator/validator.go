// Package validator 注册自定义binding校验规则
//
//	type CreateBookRequest struct {
//	    Price string `json:"price" binding:"required,decimal"`
//	    ISBN  string `json:"isbn" binding:"required,isbn"`
//	}
package validator

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

// Register 将自定义规则注册到gin的校验引擎
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = RegisterTo(v)
	})
	return err
}

// RegisterTo 注册到指定的校验器
func RegisterTo(v *validator.Validate) error {
	if err := v.RegisterValidation("decimal", validateDecimal); err != nil {
		return err
	}
	return v.RegisterValidation("isbn", validateISBN)
}

// validateDecimal 金额：合法的正数且最多两位小数
func validateDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive() && d.Exponent() >= -2
}

var isbnPattern = regexp.MustCompile(`^(?:\d[\s-]?){9}[\dXx]$|^(?:\d[\s-]?){12}\d$`)

// validateISBN ISBN-10或ISBN-13，允许空格与连字符分隔
func validateISBN(fl validator.FieldLevel) bool {
	return isbnPattern.MatchString(fl.Field().String())
}
