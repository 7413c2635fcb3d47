/*
Copyright 2023 The SFTPGo Operator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package viperenv flattens a configuration struct into the environment
// variable form viper-based programs such as SFTPGo read: nested field names
// joined by double underscores, list elements addressed by index, e.g.
// SFTPGO__HTTPD__BINDINGS__0__PORT=9000.
package viperenv

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Pair is one KEY=VALUE environment variable. Serialize returns pairs in
// declaration order so rendered child objects stay stable across reconciles.
type Pair struct {
	Key   string
	Value string
}

// UnsupportedTypeError is returned for values the environment form cannot
// represent, such as maps and byte slices.
type UnsupportedTypeError struct {
	Kind reflect.Kind
	Key  string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("cannot serialize %s at %q to environment variables", e.Kind, e.Key)
}

// FrameMismatchError reports an internal walker bug: a path frame was popped
// that does not match the frame that was pushed.
type FrameMismatchError struct {
	Expected string
	Observed string
}

func (e *FrameMismatchError) Error() string {
	return fmt.Sprintf("path frame mismatch: expected to pop %q, observed %q", e.Expected, e.Observed)
}

// Serialize flattens value into ordered environment variable pairs. When
// prefix is non-empty it is prepended to every key with a double underscore
// separator. Nil pointers emit nothing.
func Serialize(prefix string, value any) ([]Pair, error) {
	return NewSerializer(prefix).Serialize(value)
}

// Serializer walks a struct tree and collects flattened pairs. The zero value
// is not usable, call NewSerializer.
type Serializer struct {
	prefix string
	frames []string
	pairs  []Pair
}

func NewSerializer(prefix string) *Serializer {
	return &Serializer{prefix: prefix}
}

func (s *Serializer) Serialize(value any) ([]Pair, error) {
	s.pairs = s.pairs[:0]
	s.frames = s.frames[:0]

	if err := s.walk(reflect.ValueOf(value)); err != nil {
		return nil, err
	}

	return s.pairs, nil
}

func (s *Serializer) walk(value reflect.Value) error {
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return nil
		}

		return s.walk(value.Elem())
	case reflect.Struct:
		return s.walkStruct(value)
	case reflect.Slice, reflect.Array:
		return s.walkSequence(value)
	case reflect.Bool:
		s.emit(strconv.FormatBool(value.Bool()))

		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s.emit(strconv.FormatInt(value.Int(), 10))

		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s.emit(strconv.FormatUint(value.Uint(), 10))

		return nil
	case reflect.Float32, reflect.Float64:
		s.emit(strconv.FormatFloat(value.Float(), 'f', -1, 64))

		return nil
	case reflect.String:
		s.emit(value.String())

		return nil
	default:
		return &UnsupportedTypeError{Kind: value.Kind(), Key: s.key()}
	}
}

func (s *Serializer) walkStruct(value reflect.Value) error {
	structType := value.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		segment := fieldSegment(field)
		if segment == "" {
			continue
		}

		s.push(segment)

		if err := s.walk(value.Field(i)); err != nil {
			return err
		}

		if err := s.pop(segment); err != nil {
			return err
		}
	}

	return nil
}

func (s *Serializer) walkSequence(value reflect.Value) error {
	if value.Kind() == reflect.Slice && value.Type().Elem().Kind() == reflect.Uint8 {
		return &UnsupportedTypeError{Kind: value.Kind(), Key: s.key()}
	}

	for i := 0; i < value.Len(); i++ {
		segment := strconv.Itoa(i)

		s.push(segment)

		if err := s.walk(value.Index(i)); err != nil {
			return err
		}

		if err := s.pop(segment); err != nil {
			return err
		}
	}

	return nil
}

func (s *Serializer) emit(value string) {
	s.pairs = append(s.pairs, Pair{Key: s.key(), Value: value})
}

func (s *Serializer) key() string {
	segments := s.frames
	if s.prefix != "" {
		segments = append([]string{s.prefix}, segments...)
	}

	return strings.Join(segments, "__")
}

func (s *Serializer) push(segment string) {
	s.frames = append(s.frames, segment)
}

func (s *Serializer) pop(segment string) error {
	if len(s.frames) == 0 {
		return &FrameMismatchError{Expected: segment, Observed: "<empty>"}
	}

	top := s.frames[len(s.frames)-1]
	if top != segment {
		return &FrameMismatchError{Expected: segment, Observed: top}
	}

	s.frames = s.frames[:len(s.frames)-1]

	return nil
}

// fieldSegment derives the path segment for a struct field: the json tag name
// when present, the field name otherwise, converted to upper snake case.
func fieldSegment(field reflect.StructField) string {
	name := field.Name

	if tag, ok := field.Tag.Lookup("json"); ok {
		tagName, _, _ := strings.Cut(tag, ",")

		switch tagName {
		case "-":
			return ""
		case "":
		default:
			name = tagName
		}
	}

	return upperSnake(name)
}

func upperSnake(name string) string {
	var b strings.Builder

	for i, r := range name {
		if r >= 'A' && r <= 'Z' && i > 0 {
			b.WriteByte('_')
		}

		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}

		b.WriteRune(r)
	}

	return b.String()
}
