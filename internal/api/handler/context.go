package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/littlelemon/restaurant-system/internal/api/middleware"
	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

// ctxUser returns the user resolved by the Auth middleware. Its absence
// means the route was registered without the middleware and is reported as
// unauthenticated.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextKeyUser).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// pathID parses the :id path parameter. Malformed ids cannot name a row, so
// they are reported with notFound.
func pathID(c echo.Context, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}

// baseURL returns scheme and host of the current request.
func baseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

// bindAndValidate binds the request body into req and runs the validator.
// A JSON value of the wrong type is reported against its field.
func bindAndValidate(c echo.Context, req any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(body))

	if err := c.Bind(req); err != nil {
		if ve := decodeErrors(body, req); ve != nil {
			return ve
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}

// decodeErrors decodes each top-level member of a JSON object body into the
// matching field of req on its own and collects the failures. It returns nil
// when the body is not an object or no single field is at fault.
func decodeErrors(body []byte, req any) *domain.ValidationError {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return nil
	}
	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	ve := &domain.ValidationError{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := jsonName(f)
		raw, ok := members[name]
		if !ok || !f.IsExported() {
			continue
		}
		if err := json.Unmarshal(raw, reflect.New(f.Type).Interface()); err != nil {
			ve.Add(name, decodeMessage(f.Type, err))
		}
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

func decodeMessage(t reflect.Type, err error) string {
	var vErr *valueError
	if errors.As(err, &vErr) {
		return vErr.msg
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == reflect.TypeOf(decimal.Decimal{}) {
		return msgInvalidNumber
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return msgInvalidInteger
	case reflect.String:
		return "not a valid string"
	case reflect.Slice:
		return "expected a list of items"
	case reflect.Bool:
		return "must be a valid boolean"
	default:
		return "invalid value"
	}
}
