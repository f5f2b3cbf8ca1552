package oteladapters

import (
	"maps"
	"slices"

	"go.opentelemetry.io/otel/attribute"
)

// toAttributes converts labels to attributes, sorted by key.
func toAttributes(labels map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for _, key := range slices.Sorted(maps.Keys(labels)) {
		attrs = append(attrs, attribute.String(key, labels[key]))
	}

	return attrs
}
