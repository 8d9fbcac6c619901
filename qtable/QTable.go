// Package qtable implements tables of state-action values for tabular
// reinforcement learning
package qtable

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"

	"github.com/samuelfneumann/qlearn/rlerr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// QTable stores an estimate of the expected discounted return for each
// state-action pair. Rows index states and columns index actions.
//
// The dimensions of a QTable are fixed at construction. A QTable is
// not safe for concurrent writes.
type QTable struct {
	values *mat.Dense
}

// New returns a new QTable with states rows and actions columns, with
// all values set to 0.
func New(states, actions int) (*QTable, error) {
	if states <= 0 || actions <= 0 {
		return nil, rlerr.New("new", rlerr.ErrInvalidDimension,
			"states = %d, actions = %d", states, actions)
	}

	return &QTable{values: mat.NewDense(states, actions, nil)}, nil
}

// Dims returns the number of states and actions of the table
func (q *QTable) Dims() (states, actions int) {
	return q.values.Dims()
}

// Value returns the value of taking action in state
func (q *QTable) Value(state, action int) (float64, error) {
	if err := q.check("value", state, action); err != nil {
		return 0, err
	}
	return q.values.At(state, action), nil
}

// Update sets the value of taking action in state to value
func (q *QTable) Update(state, action int, value float64) error {
	if err := q.check("update", state, action); err != nil {
		return err
	}
	q.values.Set(state, action, value)
	return nil
}

// BestAction returns the action with the largest value in state. Ties
// are broken in favour of the lowest action index.
func (q *QTable) BestAction(state int) (int, error) {
	if err := q.checkState("bestAction", state); err != nil {
		return 0, err
	}
	return floats.MaxIdx(q.values.RawRowView(state)), nil
}

// MaxValue returns the largest action value in state
func (q *QTable) MaxValue(state int) (float64, error) {
	if err := q.checkState("maxValue", state); err != nil {
		return 0, err
	}
	return floats.Max(q.values.RawRowView(state)), nil
}

// Row returns a copy of the action values in state
func (q *QTable) Row(state int) ([]float64, error) {
	if err := q.checkState("row", state); err != nil {
		return nil, err
	}
	return mat.Row(nil, state, q.values), nil
}

// Clone returns a deep copy of the table
func (q *QTable) Clone() *QTable {
	return &QTable{values: mat.DenseCopyOf(q.values)}
}

// Equal returns whether two tables have the same dimensions and values
func (q *QTable) Equal(other *QTable) bool {
	if other == nil {
		return false
	}
	r1, c1 := q.Dims()
	r2, c2 := other.Dims()
	if r1 != r2 || c1 != c2 {
		return false
	}
	return mat.Equal(q.values, other.values)
}

func (q *QTable) String() string {
	return fmt.Sprintf("%v", mat.Formatted(q.values, mat.Squeeze()))
}

func (q *QTable) check(op string, state, action int) error {
	if err := q.checkState(op, state); err != nil {
		return err
	}
	if _, actions := q.Dims(); action < 0 || action >= actions {
		return rlerr.New(op, rlerr.ErrOutOfRange, "action %d not in [0, %d)",
			action, actions)
	}
	return nil
}

func (q *QTable) checkState(op string, state int) error {
	if states, _ := q.Dims(); state < 0 || state >= states {
		return rlerr.New(op, rlerr.ErrOutOfRange, "state %d not in [0, %d)",
			state, states)
	}
	return nil
}

// GobEncode implements the gob.GobEncoder interface
func (q *QTable) GobEncode() ([]byte, error) {
	return q.values.MarshalBinary()
}

// GobDecode implements the gob.GobDecoder interface
func (q *QTable) GobDecode(data []byte) error {
	var values mat.Dense
	if err := values.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("gobDecode: %v", err)
	}
	q.values = &values
	return nil
}

// Save saves the table to filename using gob encoding
func (q *QTable) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not open file: %v", err)
	}
	defer file.Close()

	enc := gob.NewEncoder(file)
	if err := enc.Encode(q); err != nil {
		return fmt.Errorf("save: could not encode table: %v", err)
	}
	return nil
}

// Load loads a table saved with Save
func Load(filename string) (*QTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("load: could not open file: %v", err)
	}
	defer file.Close()

	q := &QTable{}
	dec := gob.NewDecoder(file)
	if err := dec.Decode(q); err != nil {
		return nil, fmt.Errorf("load: could not decode table: %v", err)
	}
	return q, nil
}

type jsonTable struct {
	States  int         `json:"states"`
	Actions int         `json:"actions"`
	Values  [][]float64 `json:"values"`
}

// MarshalJSON implements the json.Marshaler interface
func (q *QTable) MarshalJSON() ([]byte, error) {
	states, actions := q.Dims()
	values := make([][]float64, states)
	for i := range values {
		values[i] = mat.Row(nil, i, q.values)
	}
	return json.Marshal(jsonTable{states, actions, values})
}
