package samplefile

import "github.com/minetrack/sampletool/pkg/codec"

// Key identifies the records an edit targets. (Dimension, X, Z) is not
// unique in a file; a key may match any number of records.
type Key struct {
	Dimension int32
	X, Z      int32
}

// Matches reports whether the sample sits at this key. The variant is not
// part of the key.
func (k Key) Matches(s codec.Sample) bool {
	return s.Dimension == k.Dimension && s.X == k.X && s.Z == k.Z
}

// Update describes the field changes an edit applies. Nil fields are left
// alone. Mineral and Liquid apply to Immersive samples; Ore applies to
// TerraFirmaCraft and Geolosys samples, and is mutually exclusive with the
// other two.
type Update struct {
	Mineral *string
	Liquid  *string
	Ore     *string
}

// Validate rejects updates that are empty or mix the ore field with the
// Immersive fields. It is called before any file I/O.
func (u Update) Validate() error {
	if u.Ore != nil && (u.Mineral != nil || u.Liquid != nil) {
		return &UsageError{Message: "--ore cannot be combined with --mineral or --liquid"}
	}
	if u.Ore == nil && u.Mineral == nil && u.Liquid == nil {
		return &UsageError{Message: "one of --mineral, --liquid or --ore is required"}
	}
	return nil
}

// Apply mutates, in place, every sample matching key whose variant accepts
// the supplied fields, and returns how many were modified. Matching samples
// of the wrong variant are left untouched and do not count.
func Apply(samples []codec.Sample, key Key, u Update) int {
	modified := 0
	for i := range samples {
		if !key.Matches(samples[i]) {
			continue
		}
		switch data := samples[i].Data.(type) {
		case codec.ImmersiveData:
			changed := false
			if u.Mineral != nil {
				data.Mineral = *u.Mineral
				changed = true
			}
			if u.Liquid != nil {
				data.Liquid = *u.Liquid
				changed = true
			}
			if changed {
				samples[i].Data = data
				modified++
			}
		case codec.TerraFirmaCraftData:
			if u.Ore != nil {
				data.Ore = *u.Ore
				samples[i].Data = data
				modified++
			}
		case codec.GeolosysData:
			if u.Ore != nil {
				data.Ore = *u.Ore
				samples[i].Data = data
				modified++
			}
		}
	}
	return modified
}

// Edit loads the file at path, applies the update to every eligible record
// at key, and rewrites the file. If nothing was eligible it returns a
// NotFoundError and the file is left byte-identical; the decode completes
// before any write begins, so a malformed file is never clobbered.
func Edit(path string, key Key, u Update) error {
	if err := u.Validate(); err != nil {
		return err
	}

	samples, err := Read(path)
	if err != nil {
		return err
	}

	if Apply(samples, key, u) == 0 {
		return &NotFoundError{Key: key, Ore: u.Ore != nil}
	}
	return Write(path, samples)
}
