package osmcqi

import "strings"

const listDelimiter = ";"

// ValueList is an ordered string collection that de-duplicates on append.
// Used for missing markers and bonus/malus tags.
type ValueList struct {
	values []string
}

func (list *ValueList) Add(value string) {
	if value == "" || valueIn(value, list.values) {
		return
	}
	list.values = append(list.values, value)
}

func (list *ValueList) AddAll(values []string) {
	for _, value := range values {
		list.Add(value)
	}
}

func (list *ValueList) Values() []string {
	return list.values
}

// Join serializes the list for the record boundary.
func (list *ValueList) Join() string {
	return strings.Join(list.values, listDelimiter)
}

// SplitJoined is the inverse of Join.
func SplitJoined(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, listDelimiter)
}

// incompleteness sums the configured weight of every distinct missing
// marker. Unknown markers weigh nothing.
func (params *Params) incompleteness(missing *ValueList) float64 {
	sum := 0.0
	for _, marker := range missing.Values() {
		sum += params.DataIncompleteness[marker]
	}
	return sum
}
