package restify

import (
	"context"
	"encoding/json"
	"strconv"
)

// mockContext implements Context for unit tests.
type mockContext struct {
	userCtx    context.Context
	paramsMap  map[string]string
	queryMap   map[string]string
	body       []byte
	status     int
	headers    map[string]string
	locals     map[any]any
	jsonData   any
	jsonCalled bool
	sentStatus int
	nextCalled bool
}

func newMockContext() *mockContext {
	return &mockContext{
		userCtx:   context.Background(),
		paramsMap: map[string]string{},
		queryMap:  map[string]string{},
		headers:   map[string]string{},
		locals:    map[any]any{},
	}
}

func (m *mockContext) UserContext() context.Context {
	if m.userCtx == nil {
		return context.Background()
	}
	return m.userCtx
}

func (m *mockContext) Params(key string, defaultValue ...string) string {
	val, ok := m.paramsMap[key]
	if !ok && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return val
}

func (m *mockContext) BodyParser(out any) error {
	if len(m.body) == 0 {
		return nil
	}
	return json.Unmarshal(m.body, out)
}

func (m *mockContext) Query(key string, defaultValue ...string) string {
	val, ok := m.queryMap[key]
	if !ok && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return val
}

func (m *mockContext) QueryInt(key string, defaultValue ...int) int {
	i, err := strconv.Atoi(m.queryMap[key])
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return 0
	}
	return i
}

func (m *mockContext) Queries() map[string]string {
	out := make(map[string]string, len(m.queryMap))
	for k, v := range m.queryMap {
		out[k] = v
	}
	return out
}

func (m *mockContext) Body() []byte {
	return m.body
}

func (m *mockContext) Status(status int) Response {
	m.status = status
	return m
}

func (m *mockContext) JSON(data any, ctype ...string) error {
	if m.status == 0 {
		m.status = 200
	}
	m.jsonData = data
	m.jsonCalled = true
	return nil
}

func (m *mockContext) SendStatus(status int) error {
	m.status = status
	m.sentStatus = status
	return nil
}

func (m *mockContext) Set(key, value string) {
	m.headers[key] = value
}

func (m *mockContext) Locals(key any, value ...any) any {
	if len(value) > 0 {
		m.locals[key] = value[0]
	}
	return m.locals[key]
}

func (m *mockContext) Next() error {
	m.nextCalled = true
	return nil
}
