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

package font

import (
	"bytes"
	"fmt"
	"slices"
	"unicode/utf16"

	"golang.org/x/exp/maps"
)

const toUnicodeHeader = `/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo
<< /Registry (Adobe)
/Ordering (UCS)
/Supplement 0
>> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <ffff>
endcodespacerange
`

const toUnicodeFooter = `endcmap
CMapName currentdict /CMap defineresource pop
end
end
`

// toUnicode builds the ToUnicode CMap for the subset, mapping
// character codes back to code points for text extraction.  A bfchar
// block may hold at most 100 entries.
func (s *subsetInfo) toUnicode() []byte {
	codes := maps.Keys(s.text)
	slices.Sort(codes)

	var buf bytes.Buffer
	buf.WriteString(toUnicodeHeader)
	for len(codes) > 0 {
		n := min(len(codes), 100)
		fmt.Fprintf(&buf, "%d beginbfchar\n", n)
		for _, code := range codes[:n] {
			fmt.Fprintf(&buf, "<%04x> <", code)
			for _, u := range utf16.Encode([]rune{s.text[code]}) {
				fmt.Fprintf(&buf, "%04x", u)
			}
			buf.WriteString(">\n")
		}
		buf.WriteString("endbfchar\n")
		codes = codes[n:]
	}
	buf.WriteString(toUnicodeFooter)
	return buf.Bytes()
}
