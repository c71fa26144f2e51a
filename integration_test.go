package crux_test

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rhartert/crux/internal/dimacs"
	"github.com/rhartert/crux/sat"
)

// This test verifies that the solver finds the exact set of models for
// every instance under testdata: each ".cnf" file is paired with a
// ".cnf.models" file listing its models (one per line, same literal
// order as the instance), pre-computed by hand for these small cases.
var testdataDir = "testdata"

type testCase struct {
	instanceName string
	instanceFile string
	modelsFile   string
}

func listTestCases(dir string) ([]testCase, error) {
	var testCases []testCase
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".cnf") {
			return nil
		}
		testCases = append(testCases, testCase{
			instanceName: d.Name(),
			instanceFile: path,
			modelsFile:   path + ".models",
		})
		return nil
	})
	return testCases, err
}

func toString(model []bool) string {
	s := make([]byte, 0, len(model))
	for _, b := range model {
		if b {
			s = append(s, 1)
		} else {
			s = append(s, 0)
		}
	}
	return string(s)
}

func toSet(s [][]bool) map[string]struct{} {
	set := map[string]struct{}{}
	for _, m := range s {
		set[toString(m)] = struct{}{}
	}
	return set
}

// solveAll exhaustively enumerates every model by blocking each one found
// and re-solving, the same trick the teacher's test harness uses.
func solveAll(t *testing.T, s *sat.Solver) [][]bool {
	for {
		status, err := s.Solve()
		if err != nil {
			t.Fatalf("Solve(): %s", err)
		}
		if status != sat.True {
			break
		}
		model := s.Models[len(s.Models)-1]
		blocking := make([]sat.Literal, len(model))
		for i, b := range model {
			if b {
				blocking[i] = sat.NegativeLiteral(i)
			} else {
				blocking[i] = sat.PositiveLiteral(i)
			}
		}
		if err := s.AddClause(blocking); err != nil {
			t.Fatalf("AddClause(): %s", err)
		}
	}
	return s.Models
}

func TestSolveAll(t *testing.T) {
	testCases, err := listTestCases(testdataDir)
	if err != nil {
		t.Fatalf("error listing test cases: %s", err)
	}
	if len(testCases) == 0 {
		t.Fatal("no test cases found")
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.instanceName, func(t *testing.T) {
			t.Parallel()

			want, err := dimacs.ReadModels(tc.modelsFile)
			if err != nil {
				t.Fatalf("model parsing error: %s", err)
			}

			s := sat.NewDefaultSolver()
			if err := dimacs.Load(tc.instanceFile, false, s); err != nil {
				t.Fatalf("instance parsing error: %s", err)
			}

			got := solveAll(t, s)

			if len(got) != len(want) {
				t.Errorf("incorrect number of models: got %d, want %d", len(got), len(want))
			}
			if diff := cmp.Diff(toSet(want), toSet(got)); diff != "" {
				t.Errorf("model mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
