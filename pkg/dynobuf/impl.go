/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package dynobuf

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
	"github.com/untillpro/dynobuffers"

	"github.com/untillpro/dataobjects/pkg/objects"
	"github.com/untillpro/dataobjects/pkg/schemas"
)

func newSchemes() *Schemes {
	return &Schemes{
		schemes: make(map[string]*dynobuffers.Scheme),
	}
}

// Prepares dynobuffer schemes for all compiled record schemas of the
// registry
func (sch *Schemes) Prepare(reg schemas.Registry) {
	reg.Types(func(t schemas.Type) {
		if s, ok := t.(schemas.Schema); ok {
			sch.add(s)
		}
	})
}

// Returns record scheme. Nil if not found
func (sch *Schemes) Scheme(name schemas.QName) *dynobuffers.Scheme {
	return sch.schemes[name.String()]
}

func (sch *Schemes) add(s schemas.Schema) {
	sch.schemes[s.QName().String()] = NewRecordScheme(s)
}

func newCodec(reg schemas.Registry, mat objects.Materializer) *Codec {
	sch := newSchemes()
	sch.Prepare(reg)
	return &Codec{schemes: sch, mat: mat}
}

// Encode stores the record instance to dynobuffer bytes.
//
// # Errors:
//   - schemas.ErrValidationError if the instance type is not a record,
//   - schemas.ErrNotFoundError if no scheme is prepared for the type,
//   - schemas.ErrInvalidError if an assigned value does not fit its
//     wire kind,
//   - schemas.ErrUnsupportedError for sequences of records.
func (c *Codec) Encode(o objects.Object) ([]byte, error) {
	s := o.Type().Schema()
	if s == nil {
		return nil, schemas.ErrValidation("%v is not a record instance", o.Type())
	}
	scheme := c.schemes.Scheme(s.QName())
	if scheme == nil {
		return nil, schemas.ErrNotFound("no scheme prepared for «%v»", s.QName())
	}

	b := dynobuffers.NewBuffer(scheme)

	var err error
	o.Fields(func(f schemas.Field, value any) {
		if err == nil {
			err = c.setFieldValue(b, f, value)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding «%v»: %w", s.QName(), err)
	}

	return b.ToBytes()
}

// Decode reads dynobuffer bytes back into an instance of the named
// materialized record type
func (c *Codec) Decode(name schemas.QName, data []byte) (objects.Object, error) {
	tp, err := c.mat.Materialize(name)
	if err != nil {
		return nil, err
	}
	s := tp.Schema()
	if s == nil {
		return nil, schemas.ErrValidation("«%v» is not a record type", name)
	}
	scheme := c.schemes.Scheme(name)
	if scheme == nil {
		return nil, schemas.ErrNotFound("no scheme prepared for «%v»", name)
	}

	b := dynobuffers.NewBuffer(scheme)
	b.Reset(data)

	kwargs := make(map[string]any)
	s.Fields(func(f schemas.Field) {
		if err == nil {
			var value any
			var ok bool
			value, ok, err = c.fieldValue(b, f)
			if ok && (err == nil) {
				kwargs[f.Name()] = value
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("error decoding «%v»: %w", name, err)
	}

	return tp.New(nil, kwargs)
}

// Stores one assigned field. Mirrors the wire mapping of the scheme:
// unsigned kinds travel bit-preserved in the signed kinds, JSON values
// and string-keyed mappings travel JSON-encoded, record references
// travel as nested buffers.
func (c *Codec) setFieldValue(b *dynobuffers.Buffer, f schemas.Field, value any) error {
	if f.Container() == schemas.ContainerKind_Map {
		bytes, err := json.Marshal(value)
		if err != nil {
			return err
		}
		b.Set(f.Name(), string(bytes))
		return nil
	}
	if f.Container() == schemas.ContainerKind_List {
		return c.setListValue(b, f, value)
	}

	switch f.DataKind() {
	case schemas.DataKind_uint32:
		b.Set(f.Name(), int32(value.(uint32)))
	case schemas.DataKind_uint64:
		switch v := value.(type) {
		case uint64:
			b.Set(f.Name(), int64(v))
		case uint:
			b.Set(f.Name(), int64(v))
		}
	case schemas.DataKind_int64:
		switch v := value.(type) {
		case int64:
			b.Set(f.Name(), v)
		case int:
			b.Set(f.Name(), int64(v))
		}
	case schemas.DataKind_JSON:
		bytes, err := json.Marshal(value)
		if err != nil {
			return err
		}
		b.Set(f.Name(), string(bytes))
	case schemas.DataKind_Record:
		o, ok := value.(objects.Object)
		if !ok {
			return schemas.ErrInvalid("field «%s» value has type «%T», but record instance expected", f.Name(), value)
		}
		bytes, err := c.Encode(o)
		if err != nil {
			return err
		}
		b.Set(f.Name(), bytes)
	case schemas.DataKind_Enum:
		v, err := c.enumValue(f, value)
		if err != nil {
			return err
		}
		b.Set(f.Name(), v)
	default:
		b.Set(f.Name(), value)
	}
	return nil
}

func (c *Codec) setListValue(b *dynobuffers.Buffer, f schemas.Field, value any) error {
	switch f.DataKind() {
	case schemas.DataKind_Record:
		return schemas.ErrUnsupported("field «%s»: sequences of records are not encodable", f.Name())
	case schemas.DataKind_Enum:
		vv := make([]int32, 0)
		rv := reflect.ValueOf(value)
		for i := 0; i < rv.Len(); i++ {
			v, err := c.enumValue(f, rv.Index(i).Interface())
			if err != nil {
				return err
			}
			vv = append(vv, v)
		}
		b.Set(f.Name(), vv)
		return nil
	}

	// elements are shape-checked at construction, here they are only
	// repacked into the typed slice dynobuffers arrays expect
	elem := dynoElemType(f.DataKind())
	rv := reflect.ValueOf(value)
	if rv.Type() == reflect.SliceOf(elem) {
		b.Set(f.Name(), value)
		return nil
	}
	packed := reflect.MakeSlice(reflect.SliceOf(elem), rv.Len(), rv.Len())
	for i := 0; i < rv.Len(); i++ {
		packed.Index(i).Set(reflect.ValueOf(rv.Index(i).Interface()).Convert(elem))
	}
	b.Set(f.Name(), packed.Interface())
	return nil
}

func dynoElemType(kind schemas.DataKind) reflect.Type {
	switch kind {
	case schemas.DataKind_int32, schemas.DataKind_uint32:
		return reflect.TypeOf(int32(0))
	case schemas.DataKind_int64, schemas.DataKind_uint64:
		return reflect.TypeOf(int64(0))
	case schemas.DataKind_float32:
		return reflect.TypeOf(float32(0))
	case schemas.DataKind_float64:
		return reflect.TypeOf(float64(0))
	case schemas.DataKind_bool:
		return reflect.TypeOf(false)
	}
	return reflect.TypeOf("")
}

// Enumeration fields are stored by numeric value, labels are resolved
// through the compiled enumeration
func (c *Codec) enumValue(f schemas.Field, value any) (int32, error) {
	switch v := value.(type) {
	case int32:
		return v, nil
	case string:
		e, err := c.mat.Materialize(f.Ref())
		if err != nil {
			return 0, err
		}
		if n, ok := e.Enum().Value(v); ok {
			return n, nil
		}
		return 0, schemas.ErrNotFound("enum «%v» value «%s»", f.Ref(), v)
	}
	return 0, schemas.ErrInvalid("field «%s» value has type «%T», but enum value expected", f.Name(), value)
}

func (c *Codec) fieldValue(b *dynobuffers.Buffer, f schemas.Field) (any, bool, error) {
	if f.Container() == schemas.ContainerKind_Map {
		return c.mapValue(b, f)
	}
	if f.Container() == schemas.ContainerKind_List {
		return c.listValue(b, f)
	}

	switch f.DataKind() {
	case schemas.DataKind_int32, schemas.DataKind_Enum:
		v, ok := b.GetInt32(f.Name())
		return v, ok, nil
	case schemas.DataKind_uint32:
		v, ok := b.GetInt32(f.Name())
		return uint32(v), ok, nil
	case schemas.DataKind_int64:
		v, ok := b.GetInt64(f.Name())
		return v, ok, nil
	case schemas.DataKind_uint64:
		v, ok := b.GetInt64(f.Name())
		return uint64(v), ok, nil
	case schemas.DataKind_float32:
		v, ok := b.GetFloat32(f.Name())
		return v, ok, nil
	case schemas.DataKind_float64:
		v, ok := b.GetFloat64(f.Name())
		return v, ok, nil
	case schemas.DataKind_string:
		v, ok := b.GetString(f.Name())
		return v, ok, nil
	case schemas.DataKind_bool:
		v, ok := b.GetBool(f.Name())
		return v, ok, nil
	case schemas.DataKind_bytes:
		if arr := b.GetByteArray(f.Name()); arr != nil {
			return arr.Bytes(), true, nil
		}
		return nil, false, nil
	case schemas.DataKind_JSON:
		if s, ok := b.GetString(f.Name()); ok {
			value := make(map[string]any)
			if err := json.Unmarshal([]byte(s), &value); err != nil {
				return nil, false, err
			}
			return value, true, nil
		}
		return nil, false, nil
	case schemas.DataKind_Record:
		if arr := b.GetByteArray(f.Name()); arr != nil {
			o, err := c.Decode(f.Ref(), arr.Bytes())
			if err != nil {
				return nil, false, err
			}
			return o, true, nil
		}
		return nil, false, nil
	}
	return nil, false, nil
}

func (c *Codec) listValue(b *dynobuffers.Buffer, f schemas.Field) (any, bool, error) {
	v := b.Get(f.Name())
	if v == nil {
		return nil, false, nil
	}
	switch f.DataKind() {
	case schemas.DataKind_uint32:
		if vv, ok := v.([]int32); ok {
			unpacked := make([]uint32, len(vv))
			for i, n := range vv {
				unpacked[i] = uint32(n)
			}
			return unpacked, true, nil
		}
	case schemas.DataKind_uint64:
		if vv, ok := v.([]int64); ok {
			unpacked := make([]uint64, len(vv))
			for i, n := range vv {
				unpacked[i] = uint64(n)
			}
			return unpacked, true, nil
		}
	case schemas.DataKind_string:
		if vv, ok := v.([]interface{}); ok {
			unpacked := make([]string, 0, len(vv))
			for _, s := range vv {
				str, ok := s.(string)
				if !ok {
					return nil, false, schemas.ErrInvalid("field «%s» sequence element has type «%T», but string expected", f.Name(), s)
				}
				unpacked = append(unpacked, str)
			}
			return unpacked, true, nil
		}
	}
	return v, true, nil
}

func (c *Codec) mapValue(b *dynobuffers.Buffer, f schemas.Field) (any, bool, error) {
	s, ok := b.GetString(f.Name())
	if !ok {
		return nil, false, nil
	}
	raw := make(map[string]any)
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, false, err
	}
	value := make(map[string]any, len(raw))
	for k, v := range raw {
		value[k] = coerceJSONValue(f.DataKind(), v)
	}
	return value, true, nil
}

// JSON numbers decode as float64, mapping values are narrowed back to
// the field data kind
func coerceJSONValue(kind schemas.DataKind, value any) any {
	n, ok := value.(float64)
	if !ok {
		return value
	}
	switch kind {
	case schemas.DataKind_int32:
		return int32(n)
	case schemas.DataKind_int64:
		return int64(n)
	case schemas.DataKind_uint32:
		return uint32(n)
	case schemas.DataKind_uint64:
		return uint64(n)
	case schemas.DataKind_float32:
		return float32(n)
	}
	return value
}
