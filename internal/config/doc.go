// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic puzzle manifest, along with the
// core interfaces (Loader, Converter) for loading it and for binding each
// puzzle's parameters to Go values.
//
// The manifest answers two questions for the dispatcher: where does a
// puzzle's input live, and which tunables (targets, slopes, bag names) does
// it run with. Concrete implementations, such as the HCL one, live in
// separate packages.
package config
