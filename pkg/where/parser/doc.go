/*
Copyright 2026 Nscale.

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

// Package parser contains the ANTLR generated lexer, parser and listener
// for where clauses.  Edit Where.g4 and regenerate, never the Go sources.
package parser

//go:generate antlr4 -Dlanguage=Go -package parser -listener -no-visitor Where.g4
