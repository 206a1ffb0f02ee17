// pdf-gen - a library for generating PDF documents
// Copyright (C) 2026  The pdf-gen authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfgen

import (
	"errors"
	"fmt"
)

// validate checks the complete object graph before any output is
// produced.  All problems found are reported together, joined into a
// single error.
func (d *Document) validate() error {
	var problems []error

	for i, id := range d.pageOrder {
		where := fmt.Sprintf("page %d", i)
		p := d.pages[id]
		problems = append(problems, d.validateContents(&p.contents, where)...)
		for j, link := range p.links {
			if d.Page(link.Target) == nil {
				problems = append(problems, &InvalidReferenceError{
					Kind:  "page",
					ID:    int(link.Target),
					Where: fmt.Sprintf("%s, link %d", where, j),
				})
			}
		}
	}

	for i, f := range d.forms {
		where := fmt.Sprintf("form %d", i)
		problems = append(problems, d.validateContents(&f.contents, where)...)
	}

	for i, b := range d.outline {
		problems = append(problems, d.validateBookmark(b, fmt.Sprintf("bookmark %d", i))...)
	}

	if cycle := d.findFormCycle(); cycle != nil {
		problems = append(problems, cycle)
	}

	return errors.Join(problems...)
}

func (d *Document) validateContents(c *contents, where string) []error {
	var problems []error
	for _, item := range c.items {
		switch item := item.(type) {
		case textItem:
			for _, span := range item {
				if d.Font(span.Font.Font) == nil {
					problems = append(problems, &InvalidReferenceError{
						Kind: "font", ID: int(span.Font.Font), Where: where,
					})
				}
			}
		case imageItem:
			if d.Image(item.Image) == nil {
				problems = append(problems, &InvalidReferenceError{
					Kind: "image", ID: int(item.Image), Where: where,
				})
			}
		case formItem:
			if d.Form(item.Form) == nil {
				problems = append(problems, &InvalidReferenceError{
					Kind: "form", ID: int(item.Form), Where: where,
				})
			}
		}
	}
	return problems
}

func (d *Document) validateBookmark(b *Bookmark, where string) []error {
	var problems []error
	if d.Page(b.Target) == nil {
		problems = append(problems, &InvalidReferenceError{
			Kind: "page", ID: int(b.Target), Where: where,
		})
	}
	for i, c := range b.children {
		problems = append(problems, d.validateBookmark(c, fmt.Sprintf("%s, child %d", where, i))...)
	}
	return problems
}

// findFormCycle searches the form placement graph for a cycle.  Only
// valid form handles are followed; dangling handles are reported
// separately by validateContents.
func (d *Document) findFormCycle() error {
	const (
		unvisited = iota
		active
		done
	)
	state := make([]int, len(d.forms))

	var visit func(id FormID) error
	visit = func(id FormID) error {
		switch state[id] {
		case active:
			return &CyclicFormError{Form: id}
		case done:
			return nil
		}
		state[id] = active
		for _, item := range d.forms[id].items {
			placed, ok := item.(formItem)
			if !ok || d.Form(placed.Form) == nil {
				continue
			}
			if err := visit(placed.Form); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for id := range d.forms {
		if err := visit(FormID(id)); err != nil {
			return err
		}
	}
	return nil
}
