package domain

import "encoding/json"

// CompletionMatrix records which (habit, day) cells are marked done.
//
// The matrix is persistent: Set and Toggle return a new matrix that shares
// every untouched row with the receiver. Rows are never written after they
// have been published, which keeps old snapshots valid for anyone still
// holding them.
type CompletionMatrix struct {
	rows map[int]map[int]bool
}

// NewCompletionMatrix returns the dense all-false matrix for the given habits.
func NewCompletionMatrix(habitIDs []int, periodLength int) CompletionMatrix {
	rows := make(map[int]map[int]bool, len(habitIDs))
	for _, id := range habitIDs {
		row := make(map[int]bool, periodLength)
		for day := 1; day <= periodLength; day++ {
			row[day] = false
		}
		rows[id] = row
	}
	return CompletionMatrix{rows: rows}
}

// MatrixFromRows deep-copies rows into a new matrix.
func MatrixFromRows(rows map[int]map[int]bool) CompletionMatrix {
	cp := make(map[int]map[int]bool, len(rows))
	for id, row := range rows {
		cp[id] = copyRow(row)
	}
	return CompletionMatrix{rows: cp}
}

// Done reports whether the habit was completed on day. Missing habits and
// missing days read as not done.
func (m CompletionMatrix) Done(habitID, day int) bool {
	return m.rows[habitID][day]
}

func (m CompletionMatrix) Set(habitID, day int, done bool) CompletionMatrix {
	if cur, ok := m.rows[habitID][day]; ok && cur == done {
		return m
	}

	next := make(map[int]map[int]bool, len(m.rows)+1)
	for id, row := range m.rows {
		next[id] = row
	}

	row := copyRow(m.rows[habitID])
	row[day] = done
	next[habitID] = row

	return CompletionMatrix{rows: next}
}

func (m CompletionMatrix) Toggle(habitID, day int) CompletionMatrix {
	return m.Set(habitID, day, !m.Done(habitID, day))
}

// Rows returns a deep copy of the underlying mapping.
func (m CompletionMatrix) Rows() map[int]map[int]bool {
	cp := make(map[int]map[int]bool, len(m.rows))
	for id, row := range m.rows {
		cp[id] = copyRow(row)
	}
	return cp
}

// DoneDays lists the completed days of a habit within 1..periodLength.
func (m CompletionMatrix) DoneDays(habitID, periodLength int) []int {
	days := []int{}
	for day := 1; day <= periodLength; day++ {
		if m.Done(habitID, day) {
			days = append(days, day)
		}
	}
	return days
}

func (m CompletionMatrix) MarshalJSON() ([]byte, error) {
	if m.rows == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.rows)
}

func (m *CompletionMatrix) UnmarshalJSON(data []byte) error {
	var rows map[int]map[int]bool
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	m.rows = rows
	return nil
}

func copyRow(row map[int]bool) map[int]bool {
	cp := make(map[int]bool, len(row)+1)
	for day, done := range row {
		cp[day] = done
	}
	return cp
}
