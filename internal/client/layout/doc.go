// Package layout computes justified photo-grid geometry: it groups image
// records into fixed-size rows and scales each row's items so that, placed
// side by side with a fixed gap, they exactly span the available width.
//
// The packer is pure and deterministic. It never blocks on dimension
// lookups: items whose pixel dimensions are not yet known are placed with a
// default 4:3 aspect ratio, and the caller re-invokes the packer once real
// dimensions arrive (see the probe package).
package layout
