// episodetool is a CLI utility for inspecting exported sandbox episodes.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/Faultbox/vrbox/internal/game/episode"
	"github.com/Faultbox/vrbox/internal/game/world"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "validate", "check":
		cmdValidate(args)
	case "rewards":
		cmdRewards(args)
	case "town":
		cmdTown(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`episodetool - humanoid sandbox episode utility

Usage:
  episodetool <command> [options]

Commands:
  info <file.json>                  Show episode summary
  validate <file.json>...           Check documents are well formed
  rewards [-n N] [-all] <file.json> List rewarded steps
  town [-seed N] [-o file.yaml]     Write a generated town layout

Examples:
  episodetool info humanoid_episodes.json
  episodetool rewards -n 20 humanoid_episodes.json
  episodetool town -seed 7 -o layouts/town7.yaml`)
}

func readEpisodes(path string) []*episode.Episode {
	eps, err := episode.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return eps
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: episodetool info <file.json>")
		os.Exit(1)
	}

	eps := readEpisodes(args[0])
	fmt.Printf("File:     %s\n", args[0])
	fmt.Printf("Episodes: %d\n", len(eps))

	for i, e := range eps {
		fmt.Println()
		fmt.Printf("Episode %d\n", i)
		fmt.Printf("  Steps:        %d\n", e.Len())
		if e.Len() == 0 {
			continue
		}
		fmt.Printf("  State width:  %d\n", len(e.States[0]))
		fmt.Printf("  Total reward: %g\n", e.TotalReward())

		first, last := e.States[0], e.States[e.Len()-1]
		fmt.Printf("  Start:        (%.3f, %.3f)\n", first[0], first[1])
		fmt.Printf("  End:          (%.3f, %.3f)\n", last[0], last[1])

		// Count rewards by value
		byValue := make(map[float64]int)
		sitting := 0
		for j, r := range e.Rewards {
			if r != 0 {
				byValue[r]++
			}
			if e.Actions[j][2] != 0 {
				sitting++
			}
		}
		fmt.Printf("  Sitting:      %d steps\n", sitting)

		values := make([]float64, 0, len(byValue))
		for v := range byValue {
			values = append(values, v)
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(values)))
		for _, v := range values {
			fmt.Printf("  Reward %-6g %d steps\n", v, byValue[v])
		}
	}
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: episodetool validate <file.json>...")
		os.Exit(1)
	}

	failed := 0
	for _, path := range args {
		eps, err := episode.ReadFile(path)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		steps := 0
		for _, e := range eps {
			steps += e.Len()
		}
		fmt.Printf("ok   %s (%d episodes, %d steps)\n", path, len(eps), steps)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func cmdRewards(args []string) {
	fs := flag.NewFlagSet("rewards", flag.ExitOnError)
	limit := fs.Int("n", 0, "Limit output to N steps (0 = all)")
	all := fs.Bool("all", false, "Include zero-reward steps")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: episodetool rewards [-n N] [-all] <file.json>")
		os.Exit(1)
	}

	eps := readEpisodes(fs.Arg(0))
	shown := 0
	for i, e := range eps {
		for j, r := range e.Rewards {
			if r == 0 && !*all {
				continue
			}
			s, a := e.States[j], e.Actions[j]
			fmt.Printf("ep %d step %-6d pos (%8.3f, %8.3f) action (%5.2f, %5.2f, %g) reward %g\n",
				i, j, s[0], s[1], a[0], a[1], a[2], r)
			shown++
			if *limit > 0 && shown >= *limit {
				return
			}
		}
	}
}

func cmdTown(args []string) {
	fs := flag.NewFlagSet("town", flag.ExitOnError)
	p := world.DefaultTownParams()
	fs.Int64Var(&p.Seed, "seed", p.Seed, "Town layout seed")
	fs.IntVar(&p.GridSize, "grid", p.GridSize, "Blocks from the center in each direction")
	out := fs.String("o", "", "Output file (default stdout)")
	fs.Parse(args)

	w := world.GenerateTown(p)
	if *out == "" {
		data, err := world.MarshalLayout(w)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	if err := world.SaveLayout(w, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s: %d benches, %d pois\n", *out, w.Count(world.POIBench), len(w.POIs))
}
