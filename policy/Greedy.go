package policy

import "github.com/samuelfneumann/qlearn/qtable"

// Greedy returns the action with the highest value in state, breaking
// ties towards the lowest action index
func Greedy(q *qtable.QTable, state int) (int, error) {
	return q.BestAction(state)
}
