// Package validators parses and validates requests before they reach the
// controllers. Validated data is handed over through c.Locals.
package validators

import (
	"reflect"
	"strconv"
	"strings"

	"eduportal/middleware"
	"eduportal/services"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
)

// Locals keys
const (
	BodyKey    = "validatedBody"
	QueryKey   = "validatedQuery"
	PageKey    = "validatedList"
	UploadsKey = "validatedUploads"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	notBlankTag = "notblank"
)

func init() {
	Validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names (or query tag names) for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = Validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		return ok && strings.TrimSpace(s) != ""
	})
	_ = Validate.RegisterTranslation(notBlankTag, Translator,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string { return fe.Field() + " cannot be blank" },
	)
}

// Struct validates v and returns the failures keyed by field name.
func Struct(v interface{}) map[string]string {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	errs := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errs[fe.Field()] = fe.Translate(Translator)
		}
		return errs
	}
	errs["request"] = err.Error()
	return errs
}

// Body parses the request body (JSON, urlencoded or multipart) into a new T,
// validates it and stores it under BodyKey.
func Body[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Struct(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals(BodyKey, reqData)
		return c.Next()
	}
}

// Query parses the filters of a list request into a new T together with the
// page, validates both and stores them under QueryKey and PageKey.
func Query[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		errs := Struct(reqData)
		page, pageErrs, err := parsePage(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		for k, v := range pageErrs {
			if errs == nil {
				errs = map[string]string{}
			}
			errs[k] = v
		}
		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals(QueryKey, reqData)
		c.Locals(PageKey, page)
		return c.Next()
	}
}

// List validates only the page and limit parameters.
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, errs, err := parsePage(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals(PageKey, page)
		return c.Next()
	}
}

func parsePage(c *fiber.Ctx) (services.Page, map[string]string, error) {
	var page services.Page
	if err := c.QueryParser(&page); err != nil {
		return page, nil, err
	}
	return page.Normalize(), Struct(page), nil
}

// ID checks that the path parameter is a positive integer and stores it as a
// uint under the parameter's name.
func ID(params ...string) fiber.Handler {
	if len(params) == 0 {
		params = []string{"id"}
	}
	return func(c *fiber.Ctx) error {
		for _, param := range params {
			raw := strings.TrimSpace(c.Params(param))
			if raw == "" {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
			}
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || id == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
			}
			c.Locals(param, uint(id))
		}
		return c.Next()
	}
}

// PageOf returns the page stored by Query or List.
func PageOf(c *fiber.Ctx) services.Page {
	page, _ := c.Locals(PageKey).(services.Page)
	return page.Normalize()
}

// IDOf returns the id stored by ID for the parameter.
func IDOf(c *fiber.Ctx, param string) uint {
	id, _ := c.Locals(param).(uint)
	return id
}
