// Package molecule implements the core data model of the saponin diagram
// builder: named component catalogs, attachment point registration, and the
// mutable molecule graph that ties one scaffold to ordered lists of attached
// sugars and substituents.
//
// The package is purely in-memory and single-owner: a [Builder] bundles one
// molecule with its registries, and every builder is independent. Hosts that
// serve multiple users must create one builder per session and never share
// instances (see the session package).
//
// All mutations follow validate-then-commit ordering: an operation either
// succeeds fully or fails with a coded error from pkg/errors and leaves the
// state untouched.
package molecule
