// huffc - assemble an EVM runtime payload into minimal deploy bytecode
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/Maddiaa0/go-huff/artifact"
	"github.com/Maddiaa0/go-huff/asm"
	"github.com/Maddiaa0/go-huff/cache"
	"github.com/Maddiaa0/go-huff/evm"
	"github.com/Maddiaa0/go-huff/manifest"
)

var log = commonlog.GetLogger("huffc")

func main() {
	runtimePath := flag.String("runtime", "", "Hex file holding the runtime payload")
	output := flag.String("o", "", "Output path (default: stdout)")
	format := flag.String("format", "", "Output format: hex, bin or artifact")
	budget := flag.Int("budget", 0, "Shrink iteration budget (0 = default, -1 = unbounded)")
	noCache := flag.Bool("no-cache", false, "Bypass the build cache")
	manifestDir := flag.String("manifest-dir", ".", "Directory containing huff.toml")
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: huffc [options]\n\n")
		fmt.Fprintf(os.Stderr, "Wraps a runtime payload in minimal contract-creation bytecode.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  huffc -runtime runtime.hex                # Deploy bytecode to stdout\n")
		fmt.Fprintf(os.Stderr, "  huffc -runtime runtime.hex -o out.bin -format bin\n")
		fmt.Fprintf(os.Stderr, "  huffc                                     # Settings from ./huff.toml\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	if err := run(*runtimePath, *output, *format, *budget, *noCache, *manifestDir); err != nil {
		fmt.Fprintf(os.Stderr, "huffc: %v\n", err)
		os.Exit(1)
	}
}

func run(runtimePath, output, format string, budget int, noCache bool, manifestDir string) error {
	useCache := false

	// Manifest supplies defaults; flags win.
	if m, err := manifest.Load(manifestDir); err == nil {
		if runtimePath == "" {
			runtimePath = m.RuntimePath()
		}
		if output == "" && m.Build.Output != "" {
			output = m.OutputPath()
		}
		if format == "" {
			format = m.EffectiveFormat()
		}
		if budget == 0 {
			budget = m.EffectiveBudget()
		}
		useCache = m.Build.Cache
		log.Infof("loaded %s", filepath.Join(manifestDir, manifest.Filename))
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if runtimePath == "" {
		return fmt.Errorf("no runtime payload: pass -runtime or configure huff.toml")
	}
	if format == "" {
		format = manifest.FormatHex
	}
	if budget == 0 {
		budget = asm.DefaultShrinkBudget
	}
	if noCache {
		useCache = false
	}

	payload, err := readHexFile(runtimePath)
	if err != nil {
		return err
	}
	log.Infof("runtime payload: %d bytes", len(payload))

	var store *cache.Cache
	var key string
	if useCache {
		store, err = cache.Open(filepath.Join(manifestDir, ".huff-cache.db"))
		if err != nil {
			return err
		}
		defer store.Close()

		key = cache.Key(payload, budget)
		if data, err := store.Get(key); err == nil {
			log.Infof("cache hit for %s", key[:12])
			return writeFromArtifact(data, output, format)
		} else if err != cache.ErrMiss {
			return err
		}
	}

	steps := asm.DeploySteps(payload)
	if err := asm.Validate(steps); err != nil {
		return err
	}
	solid, err := asm.Solidify(steps)
	if err != nil {
		return err
	}
	solid = asm.Shrink(solid, budget)
	code, err := asm.ToBytecode(solid)
	if err != nil {
		return err
	}
	log.Infof("assembled %d bytes of deploy bytecode", len(code))
	log.Debugf("disassembly:\n%s", evm.Disassemble(code))

	art := artifact.FromAssembly(runtimePath, solid, code)
	if store != nil {
		data, err := artifact.Marshal(art)
		if err != nil {
			return err
		}
		if err := store.Put(key, data); err != nil {
			log.Warningf("cache store failed: %v", err)
		}
	}

	return writeArtifact(art, output, format)
}

// writeFromArtifact serves an output request from cached artifact bytes.
func writeFromArtifact(data []byte, output, format string) error {
	if format == manifest.FormatArtifact {
		return writeOut(output, data)
	}
	art, err := artifact.Unmarshal(data)
	if err != nil {
		return err
	}
	return writeArtifact(art, output, format)
}

func writeArtifact(art *artifact.Artifact, output, format string) error {
	switch format {
	case manifest.FormatHex:
		return writeOut(output, []byte(fmt.Sprintf("%x\n", art.Bytecode)))
	case manifest.FormatBin:
		return writeOut(output, art.Bytecode)
	case manifest.FormatArtifact:
		data, err := artifact.Marshal(art)
		if err != nil {
			return err
		}
		return writeOut(output, data)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeOut(output string, data []byte) error {
	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}
