package book

// MergeJudges combines the two per-judge parses of a chapter into one
// mapping keyed by the union of their sections and subsections. Each merged
// entry keeps every judge's lists under that judge's key; a judge absent
// from a subsection contributes nothing. When both judges carry a
// subsection the UVa title wins. Both describe the same book subsection,
// so no agreement check is made.
func MergeJudges(uva, kattis SectionMap) MergedChapter {
	merged := make(MergedChapter)

	merge := func(parsed SectionMap, judge Judge) {
		for sectionID, subsections := range parsed {
			if merged[sectionID] == nil {
				merged[sectionID] = make(map[string]*MergedSubsection)
			}
			for subsectionID, sub := range subsections {
				entry := merged[sectionID][subsectionID]
				if entry == nil {
					entry = &MergedSubsection{Title: sub.Title}
					merged[sectionID][subsectionID] = entry
				}
				switch judge {
				case JudgeUVa:
					entry.UVa = sub.Probs
				case JudgeKattis:
					entry.Kattis = sub.Probs
				}
			}
		}
	}

	// UVa first, so its titles take precedence for shared subsections.
	merge(uva, JudgeUVa)
	merge(kattis, JudgeKattis)

	return merged
}
