package msvc

import (
	"context"
	"fmt"
	"strings"
)

// How a Resolution was reached.
const (
	SourceRequested = "requested"
	SourceDetected  = "detected"
	SourceFallback  = "fallback"
)

// InvalidVersionError is returned for a requested release that is not
// supported.
type InvalidVersionError struct {
	Requested string
	Supported []string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("unsupported Visual Studio version %q (supported: %s)", e.Requested, strings.Join(e.Supported, ", "))
}

// Resolution is the generator picked for a configure run.
type Resolution struct {
	Generator string
	Version   Version
	Source    string
	// Instance is set when the generator comes from a detected installation.
	Instance *Instance
	Warnings []string
}

// Resolver picks the CMake generator.
type Resolver struct {
	detector *Detector
}

// NewResolver returns a Resolver backed by d, or by a default Detector
// when d is nil.
func NewResolver(d *Detector) *Resolver {
	if d == nil {
		d = NewDetector()
	}
	return &Resolver{detector: d}
}

// Resolve returns the generator for requested. An empty request picks the
// newest installed release, then DefaultYear.
func (r *Resolver) Resolve(ctx context.Context, requested string) (Resolution, error) {
	requested = strings.TrimSpace(requested)
	if requested != "" {
		v, ok := Lookup(requested)
		if !ok {
			return Resolution{}, &InvalidVersionError{Requested: requested, Supported: Years()}
		}
		return Resolution{Generator: v.Generator, Version: v, Source: SourceRequested}, nil
	}

	det := r.detector.Detect(ctx)
	if len(det.Instances) > 0 {
		inst := det.Instances[0]
		return Resolution{
			Generator: inst.Generator,
			Version:   inst.Version,
			Source:    SourceDetected,
			Instance:  &inst,
			Warnings:  det.Warnings,
		}, nil
	}

	v, _ := Lookup(DefaultYear)
	warnings := append(det.Warnings, fmt.Sprintf("no Visual Studio installation detected, falling back to %q", v.Generator))
	return Resolution{Generator: v.Generator, Version: v, Source: SourceFallback, Warnings: warnings}, nil
}

// ResolveGenerator resolves requested with the host's installations.
func ResolveGenerator(ctx context.Context, requested string) (string, error) {
	res, err := NewResolver(nil).Resolve(ctx, requested)
	if err != nil {
		return "", err
	}
	return res.Generator, nil
}
