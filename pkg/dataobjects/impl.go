/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package dataobjects

import (
	"reflect"
	"sync"

	"github.com/untillpro/dataobjects/pkg/objects"
	"github.com/untillpro/dataobjects/pkg/schemas"
)

// Process-wide state: the default registry and one materializer per
// registry. Populated during initialization, read-only thereafter.
var (
	mx           sync.Mutex
	defaultReg   schemas.Registry
	materializer = map[schemas.Registry]objects.Materializer{}
)

func applyOptions(opts []Option) *options {
	o := &options{pkg: DefaultPackage}
	for _, opt := range opts {
		opt(o)
	}
	if o.reg == nil {
		o.reg = registry()
	}
	return o
}

func registry() schemas.Registry {
	mx.Lock()
	defer mx.Unlock()
	if defaultReg == nil {
		defaultReg = schemas.New()
	}
	return defaultReg
}

func materializerFor(reg schemas.Registry) objects.Materializer {
	mx.Lock()
	defer mx.Unlock()
	m, ok := materializer[reg]
	if !ok {
		m = objects.New(reg)
		materializer[reg] = m
	}
	return m
}

func candidateType(candidate any) (reflect.Type, error) {
	if candidate == nil {
		return nil, schemas.ErrValidation("nil candidate")
	}
	if t, ok := candidate.(reflect.Type); ok {
		return t, nil
	}
	return reflect.TypeOf(candidate), nil
}
