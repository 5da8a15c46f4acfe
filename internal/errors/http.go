package errors

// ResponseBody is the JSON error envelope returned by the HTTP API
type ResponseBody struct {
	Error  string              `json:"error"`
	Code   Code                `json:"code"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// ToResponse converts an error into an HTTP status and response body.
// Internal failures never leak the cause, only the user-facing message.
func ToResponse(err error) (int, ResponseBody) {
	code := GetCode(err)
	body := ResponseBody{
		Error: GetMessage(err),
		Code:  code,
	}

	var customErr *Error
	if !As(err, &customErr) && code == CodeInternal {
		// unwrapped driver errors carry details we don't show
		body.Error = "internal error"
	}

	if fields, ok := GetMeta(err)[metaValidationErrors].(map[string][]string); ok {
		body.Fields = fields
	}

	return code.HTTPStatus(), body
}
