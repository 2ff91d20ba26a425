package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError описывает ошибку валидации одного поля запроса
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// Errors - список ошибок валидации, реализует error
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Param+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Имена полей в ошибках берем из json тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank: строка не пустая после обрезки пробелов
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}

	// maxbytes: длина в байтах, а не в рунах (bcrypt принимает не больше 72 байт)
	if err := v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("maxbytes: bad param %q", fl.Param()))
		}
		return len(fl.Field().String()) <= limit
	}); err != nil {
		panic(fmt.Sprintf("register maxbytes validation: %v", err))
	}

	return v
}

// Struct валидирует структуру запроса по тегам `validate`.
// Текст ошибки берется из тега `msg_<правило>`, затем из `msg`.
// Возвращает Errors, если хотя бы одно правило нарушено
func Struct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	typ := reflect.Indirect(reflect.ValueOf(req)).Type()
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Error()
		if f, ok := typ.FieldByName(fe.StructField()); ok {
			if m := f.Tag.Get("msg_" + fe.Tag()); m != "" {
				msg = m
			} else if m := f.Tag.Get("msg"); m != "" {
				msg = m
			}
		}
		out = append(out, FieldError{Param: fe.Field(), Msg: msg})
	}

	return out
}

// NormalizeEmail приводит email к каноническому виду для хранения и поиска
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
