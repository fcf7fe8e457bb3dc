package binrec

import (
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// Search evaluates a JMESPath expression against the Interface projection
// of a decoded value, for example "recent[1].sender" or "payments[*].amount"
// on a Record. Use CompileQuery to evaluate the same expression against many
// records.
func Search(expr string, v Value) (interface{}, error) {
	return jmespath.Search(expr, v.Interface())
}

// Query is a compiled JMESPath expression, reusable across decoded records.
type Query struct {
	jp *jmespath.JMESPath
}

// CompileQuery compiles a JMESPath expression.
func CompileQuery(expr string) (*Query, error) {
	jp, err := jmespath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile query: %w", err)
	}
	return &Query{jp: jp}, nil
}

// Search evaluates the query against the Interface projection of v.
func (q *Query) Search(v Value) (interface{}, error) {
	return q.jp.Search(v.Interface())
}
