// Command crux reads a DIMACS CNF instance and reports its satisfiability.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rhartert/crux/internal/dimacs"
	"github.com/rhartert/crux/sat"
)

var (
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile in memprof")
	flagGzip       = flag.Bool("gzip", false, "treat the instance file as gzip-compressed")
	flagTimeout    = flag.Duration("timeout", sat.DefaultConfig.Timeout, "wall-clock solving budget")
	flagSeed       = flag.Int64("seed", sat.DefaultConfig.RandomSeed, "seed for phase randomization")
	flagElim       = flag.Bool("elim", sat.DefaultConfig.Elim, "enable bounded variable elimination and subsumption")
	flagReduce     = flag.Bool("reduce", sat.DefaultConfig.Reduce, "enable learnt-clause database reduction")
	flagStabilize  = flag.Bool("stabilize", sat.DefaultConfig.Stabilize, "enable Luby-scheduled restart stabilization")
	flagCertify    = flag.Bool("certify", sat.DefaultConfig.Certify, "emit a DRAT proof")
	flagProof      = flag.String("proof", "", "file to write the DRAT proof to (implies -certify)")
	flagModel      = flag.String("verify-model", "", "file holding an expected model to check the result against")
)

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	sat          sat.Config
	proofFile    string
	modelFile    string
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}

	cfg := sat.DefaultConfig
	cfg.Timeout = *flagTimeout
	cfg.RandomSeed = *flagSeed
	cfg.Elim = *flagElim
	cfg.Reduce = *flagReduce
	cfg.Stabilize = *flagStabilize
	cfg.Certify = *flagCertify || *flagProof != ""

	return &config{
		instanceFile: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		sat:          cfg,
		proofFile:    *flagProof,
		modelFile:    *flagModel,
	}, nil
}

// Exit codes follow the SAT-competition convention: SATISFIABLE is 0,
// UNSATISFIABLE is 20, and any other outcome (error, timeout,
// interruption, or a mismatched --verify-model check) is 1.
const (
	exitSAT   = 0
	exitUNSAT = 20
	exitOther = 1
)

func run(cfg *config) (int, error) {
	s := sat.NewSolver(cfg.sat)

	if err := dimacs.Load(cfg.instanceFile, *flagGzip, s); err != nil {
		return exitOther, fmt.Errorf("could not load instance: %w", err)
	}

	var proof *sat.DRATWriter
	if cfg.sat.Certify {
		path := cfg.proofFile
		if path == "" {
			path = "proof.drat"
		}
		f, err := os.Create(path)
		if err != nil {
			return exitOther, fmt.Errorf("could not create proof file: %w", err)
		}
		defer f.Close()
		proof = sat.NewDRATWriter(f)
		s.SetProofWriter(proof)
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", s.NumConstraints())

	t := time.Now()
	status, solveErr := s.Solve()
	elapsed := time.Since(t)

	if proof != nil {
		if err := proof.Close(); err != nil {
			return exitOther, fmt.Errorf("could not flush proof file: %w", err)
		}
	}

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.TotalConflicts, float64(s.TotalConflicts)/elapsed.Seconds())
	fmt.Printf("c status:     %s\n", status.String())

	if solveErr != nil {
		return exitOther, solveErr
	}

	if status == sat.True && cfg.modelFile != "" {
		if err := verifyModel(s, cfg.modelFile); err != nil {
			return exitOther, err
		}
	}

	switch status {
	case sat.True:
		return exitSAT, nil
	case sat.False:
		return exitUNSAT, nil
	default:
		return exitOther, fmt.Errorf("solve returned with unknown status")
	}
}

func verifyModel(s *sat.Solver, path string) error {
	want, err := dimacs.ReadModels(path)
	if err != nil {
		return fmt.Errorf("could not read expected model: %w", err)
	}
	if len(want) == 0 || len(s.Models) == 0 {
		return fmt.Errorf("no model to compare")
	}
	got := s.Models[len(s.Models)-1]
	exp := want[0]
	if len(exp) != len(got) {
		return fmt.Errorf("model size mismatch: want %d variables, got %d", len(exp), len(got))
	}
	for i := range exp {
		if exp[i] != got[i] {
			return fmt.Errorf("model mismatch at variable %d: want %v, got %v", i+1, exp[i], got[i])
		}
	}
	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	code, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crux: %s\n", err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	os.Exit(code)
}
