package models

import "sort"

// JSONValue is a generic type to represent any JSON value.
// This can be a string, number, boolean, null, object, or array.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// NewObject creates an empty JSON object
func NewObject() JSONObject {
	return make(JSONObject)
}

// Set binds key to value, replacing any previous binding
func (o JSONObject) Set(key string, value JSONValue) {
	o[key] = value
}

// Get returns the value bound to key and whether the key is present
func (o JSONObject) Get(key string) (JSONValue, bool) {
	v, ok := o[key]
	return v, ok
}

// Keys returns the object's keys in sorted order
func (o JSONObject) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
