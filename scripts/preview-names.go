package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pfrederiksen/cp4-practice/internal/book"
	"github.com/pfrederiksen/cp4-practice/internal/titles"
)

func main() {
	// A small sample tree covering both chapter layouts
	tree := book.Tree{
		"ch4": book.MergedChapter{
			"4.5": {
				"4.5a": &book.MergedSubsection{
					Title: "APSP, Standard",
					JudgeProblems: book.JudgeProblems{
						UVa:    &book.ProblemList{Starred: []string{"821"}, Extra: []string{"341", "10171"}},
						Kattis: &book.ProblemList{Starred: []string{"allpairspath"}, Extra: []string{}},
					},
				},
			},
		},
		"ch9": book.MergedChapter{
			"9.": {
				"9.a": &book.MergedSubsection{
					Title: "2-SAT",
					JudgeProblems: book.JudgeProblems{
						UVa: &book.ProblemList{Starred: []string{"10319"}, Extra: []string{}},
					},
				},
			},
		},
	}

	table, err := titles.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading title table: %v\n", err)
		os.Exit(1)
	}

	doc, err := book.NewRenamer(table).RenameBook(tree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error renaming: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Directory-name preview for both chapter layouts:")
	fmt.Println("---")
	fmt.Println(string(data))
}
