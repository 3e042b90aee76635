package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"stroke":    strokeCases,
	"curve":     curveCases,
	"precision": precisionCases,
	"subpath":   subpathCases,
	"fragment":  fragmentCases,
	"ctm":       ctmCases,
	"large":     largeCases,
}

// Lookup returns the test case with the given full name, which is the
// category and the case name joined by an underscore.
func Lookup(name string) (TestCase, bool) {
	for category, cases := range All {
		for _, tc := range cases {
			if category+"_"+tc.Name == name {
				return tc, true
			}
		}
	}
	return TestCase{}, false
}
