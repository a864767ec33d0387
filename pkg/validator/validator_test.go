package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookForm struct {
	Price string `validate:"required,decimal"`
	ISBN  string `validate:"required,isbn"`
}

func TestCustomRules(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterTo(v))

	tests := []struct {
		name  string
		form  bookForm
		valid bool
	}{
		{name: "合法", form: bookForm{Price: "59.90", ISBN: "978-7-115-42802-8"}, valid: true},
		{name: "整数价格", form: bookForm{Price: "10", ISBN: "9787115428028"}, valid: true},
		{name: "ISBN-10带X", form: bookForm{Price: "1.5", ISBN: "080442957X"}, valid: true},
		{name: "三位小数", form: bookForm{Price: "1.999", ISBN: "9787115428028"}},
		{name: "负数价格", form: bookForm{Price: "-1", ISBN: "9787115428028"}},
		{name: "零价格", form: bookForm{Price: "0", ISBN: "9787115428028"}},
		{name: "非数字价格", form: bookForm{Price: "abc", ISBN: "9787115428028"}},
		{name: "ISBN位数错误", form: bookForm{Price: "1", ISBN: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
