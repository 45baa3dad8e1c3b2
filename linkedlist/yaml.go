// SPDX-License-Identifier: MIT

package linkedlist

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = (*List[int])(nil)
	_ yaml.Unmarshaler = (*List[int])(nil)
)

// MarshalYAML encodes l as a YAML sequence of its values in chain order.
func (l *List[T]) MarshalYAML() (interface{}, error) {
	return l.Slice(), nil
}

// UnmarshalYAML replaces the contents of l with the values of a YAML
// sequence, keeping l's comparator and options. A null node clears l.
// On a decode error l is left unchanged.
func (l *List[T]) UnmarshalYAML(node *yaml.Node) error {
	var values []T
	if err := node.Decode(&values); err != nil {
		return fmt.Errorf("%s: %w", methodUnmarshalYAML, err)
	}
	l.Clear()
	l.extend(values)

	return nil
}
