package dimacs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rhartert/crux/sat"
)

type instance struct {
	Variables int
	Clauses   [][]sat.Literal
}

func (i *instance) AddVariable() int {
	i.Variables++
	return i.Variables - 1
}

func (i *instance) AddClause(tmpClause []sat.Literal) error {
	clause := make([]sat.Literal, len(tmpClause))
	copy(clause, tmpClause)
	i.Clauses = append(i.Clauses, clause)
	return nil
}

var want = instance{
	Variables: 3,
	Clauses: [][]sat.Literal{
		{0, 2, 4},
		{0, 2, 5},
		{0, 3, 4},
		{1, 2, 4},
		{1, 3, 4},
		{1, 2, 5},
		{0, 3, 5},
		{1, 3, 5},
	},
}

func TestLoad_cnf(t *testing.T) {
	got := instance{}
	gotErr := Load("testdata/test_instance.cnf", false, &got)

	if gotErr != nil {
		t.Errorf("Load(): want no error, got %s", gotErr)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestLoad_gzip(t *testing.T) {
	got := instance{}
	gotErr := Load("testdata/test_instance.cnf.gz", true, &got)

	if gotErr != nil {
		t.Errorf("Load(): want no error, got %s", gotErr)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestLoad_noFile(t *testing.T) {
	got := instance{}
	gotErr := Load("", false, &got)

	if gotErr == nil {
		t.Errorf("Load(): want error, got none")
	}
}

func TestLoad_gzip_notGzipFile(t *testing.T) {
	got := instance{}
	gotErr := Load("testdata/test_instance.cnf", true, &got)

	if gotErr == nil {
		t.Errorf("Load(): want error, got none")
	}
}

func TestLoad_undeclaredVariable(t *testing.T) {
	got := instance{}
	gotErr := Load("testdata/bad_var.cnf", false, &got)

	if gotErr == nil {
		t.Errorf("Load(): want error, got none")
	}
}
