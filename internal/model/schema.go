package model

import "salon-management-api/internal/store"

// Partial updates arrive as free-form JSON objects because a field set to
// null must stay distinguishable from a field left out of the request. Each
// updatable collection declares a Schema; ValidatePartial filters the body
// against it and rejects unknown names and wrong JSON types.

type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
)

type Field struct {
	Kind     Kind
	Nullable bool
}

type Schema map[string]Field

// TaskSchema covers every client-updatable task field. The id is absent on
// purpose: it is store-assigned and immutable.
var TaskSchema = Schema{
	"title":        {Kind: KindString},
	"createdAt":    {Kind: KindString},
	"dueDate":      {Kind: KindString, Nullable: true},
	"notes":        {Kind: KindString, Nullable: true},
	"customerId":   {Kind: KindString, Nullable: true},
	"customerName": {Kind: KindString, Nullable: true},
	"completed":    {Kind: KindBool},
}

// ValidatePartial checks an already-decoded JSON object against the schema
// and returns the subset as a store.Record ready to merge. An empty body is
// a valid (no-op) update.
func (s Schema) ValidatePartial(body map[string]any) (store.Record, error) {
	out := make(store.Record, len(body))
	for name, value := range body {
		field, ok := s[name]
		if !ok {
			return nil, &ValidationError{Field: name, Reason: "unknown field"}
		}
		if value == nil {
			if !field.Nullable {
				return nil, &ValidationError{Field: name, Reason: "may not be null"}
			}
			out[name] = nil
			continue
		}
		switch field.Kind {
		case KindString:
			if _, ok := value.(string); !ok {
				return nil, &ValidationError{Field: name, Reason: "must be a string"}
			}
		case KindNumber:
			if _, ok := value.(float64); !ok {
				return nil, &ValidationError{Field: name, Reason: "must be a number"}
			}
		case KindBool:
			if _, ok := value.(bool); !ok {
				return nil, &ValidationError{Field: name, Reason: "must be a boolean"}
			}
		}
		out[name] = value
	}
	return out, nil
}
