package libdiff

import (
	"github.com/dictwrap/go-dictwrap/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// FieldsDiff summarizes how the field sets of two object nodes differ.
// Changed holds field names present in both whose values are not
// structurally equal.
type FieldsDiff struct {
	Added   []string
	Removed []string
	Changed []string
}

func (fd *FieldsDiff) Empty() bool {
	return len(fd.Added) == 0 && len(fd.Removed) == 0 && len(fd.Changed) == 0
}

// DiffFields computes a FieldsDiff between two object nodes. Field names
// are mapped to runes and diffed as sequences, so the result respects
// field order rather than treating the objects as unordered sets.
func DiffFields(from, to *ir.Node) *FieldsDiff {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := &FieldsDiff{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				res.Removed = append(res.Removed, runeMap[r])
				fi++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				res.Added = append(res.Added, runeMap[r])
				ti++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				if ir.Compare(from.Values[fi], to.Values[ti]) != 0 {
					res.Changed = append(res.Changed, runeMap[r])
				}
				fi++
				ti++
			}
		}
	}
	// a field both removed and added has moved; fold it into Changed when
	// its value changed too, drop it when only its position did
	addedSet := map[string]bool{}
	for _, f := range res.Added {
		addedSet[f] = true
	}
	var removed []string
	for _, f := range res.Removed {
		if !addedSet[f] {
			removed = append(removed, f)
			continue
		}
		delete(addedSet, f)
		if ir.Compare(ir.Get(from, f), ir.Get(to, f)) != 0 {
			res.Changed = append(res.Changed, f)
		}
	}
	var added []string
	for _, f := range res.Added {
		if addedSet[f] {
			added = append(added, f)
		}
	}
	res.Added = added
	res.Removed = removed
	return res
}

func mapFieldsTo(fieldMap map[string]rune, runeMap map[rune]string, node *ir.Node) []rune {
	runes := make([]rune, 0, len(node.Fields))
	for _, f := range node.Fields {
		r, ok := fieldMap[f.String]
		if !ok {
			r = rune(len(fieldMap) + 1)
			fieldMap[f.String] = r
			runeMap[r] = f.String
		}
		runes = append(runes, r)
	}
	return runes
}
