// Package generator implements the brush resource generation pipeline.
//
// One run is a full rebuild: the brush definitions are loaded once,
// sorted by name, and fanned out to every artifact from that single
// in-memory list. The pipeline is strictly linear:
//
//	load -> sort -> filter -> build tree -> emit Light -> emit Dark
//	     -> emit ObsoleteBrushes -> emit accessor class
//
// # Artifacts
//
//   - Themes/<Theme>.Light.xaml and Themes/<Theme>.Dark.xaml: resource
//     dictionaries with one entry per brush plus one per alternate key,
//     all sharing the brush's resolved theme value.
//   - Themes/<Theme>.ObsoleteBrushes.xaml: the template file with its
//     insertion marker line replaced by alias entries mapping each
//     obsolete key to its brush's canonical name.
//   - Theme.g.cs: a nested accessor class mirroring the hierarchy the
//     dotted brush names imply.
//
// # Sentinel Filtering
//
// The brush named by Settings.IgnoredName is excluded from the tree and
// from obsolete alias processing, but its theme values are still emitted
// into both theme dictionaries. This asymmetry is intentional and relied
// upon by the toolkit; the theme dictionary emitters receive the
// unfiltered list on purpose.
//
// # Failure Model
//
// Every failure aborts the run. Artifacts are written one at a time, so
// a failure partway through emission can leave earlier outputs updated
// and later ones stale; the next successful run rewrites all of them.
package generator
