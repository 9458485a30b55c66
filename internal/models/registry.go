package models

import "encoding/json"

// Model is implemented by all resources that can be exported.
type Model interface {
	Export() (json.RawMessage, error) // All instances of this model for export.
}

// The "Registry" is a slice of all models available
//
// It is maintained so that operations that affect all models do not need to explicitly iterate over every single model,
// increasing the risk of forgetting something when adding a new model
var Registry = []Model{
	AllocationRule{},
	Category{},
	Envelope{},
	IncomeSource{},
	MatchRule{},
	Transaction{},
}

// export returns all instances of a model, including soft-deleted ones.
func export[M any]() (json.RawMessage, error) {
	var resources []M
	err := DB.Unscoped().Find(&resources).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&resources)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}

func (AllocationRule) Export() (json.RawMessage, error) { return export[AllocationRule]() }
func (Category) Export() (json.RawMessage, error)       { return export[Category]() }
func (Envelope) Export() (json.RawMessage, error)       { return export[Envelope]() }
func (IncomeSource) Export() (json.RawMessage, error)   { return export[IncomeSource]() }
func (MatchRule) Export() (json.RawMessage, error)      { return export[MatchRule]() }
func (Transaction) Export() (json.RawMessage, error)    { return export[Transaction]() }
