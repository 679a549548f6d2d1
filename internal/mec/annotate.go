package mec

import "regexp"

// The FEANX exporter writes display names as annotation comments above
// each property/material block:
//
//	$$ Name of Property [ID:3] <Lining>
//	$$ Name of Material [ID:2] <Weathered granite>
//
// The tokenizer skips them as comments; this side channel harvests
// them so decoded records get their display names back.
var (
	propNameRe = regexp.MustCompile(`(?m)^\$\$ Name of Property \[ID:(\d+)\] <([^>]+)>`)
	matNameRe  = regexp.MustCompile(`(?m)^\$\$ Name of Material \[ID:(\d+)\] <([^>]+)>`)
)

// harvestNames extracts property and material display names keyed by
// id. Later annotations for the same id overwrite earlier ones.
func harvestNames(text string) (props, mats map[string]string) {
	props = make(map[string]string)
	mats = make(map[string]string)
	for _, m := range propNameRe.FindAllStringSubmatch(text, -1) {
		props[canonID(m[1])] = m[2]
	}
	for _, m := range matNameRe.FindAllStringSubmatch(text, -1) {
		mats[canonID(m[1])] = m[2]
	}
	return props, mats
}
