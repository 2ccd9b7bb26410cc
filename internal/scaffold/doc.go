// Package scaffold creates practice directory structures from the problem
// document.
//
// Every problem gets a directory named after its id with a test_cases
// subdirectory; sample test cases, when available, land under
// test_cases/sample_files. A whole chapter is scaffolded by walking its
// renamed sections and subsections, so the directory tree on disk mirrors
// the document:
//
//	ch4_Graph/
//	  4_5_All_Pairs_Shortest_Paths/
//	    4_5a_APSP_Standard/
//	      uva/
//	        821/
//	          test_cases/
//	      kattis/
//	        allpairspath/
//	          test_cases/
//	            sample_files/
//	              1.in
//	              1.ans
//
// The rare-topics chapter has no section layer, so its topics sit directly
// under the chapter directory.
package scaffold
