package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

func main() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Clairadol Impact Calculator

Computes the cost/benefit tradeoff of switching from Huffstatin to Clairadol
in Zachistan at a chosen adoption rate. For each rate it derives lives saved
by age group, the blended programme cost, the additional cost over the
incumbent-only baseline and the cost per life saved.

MODES:
  This tool supports several operating modes:

  DASHBOARD MODE (default)
    Opens the interactive dashboard in an embedded browser window with a
    slider for the adoption rate. Charts and metrics update live.
    - Best for: exploring "what if X%% of patients switched?"

  WEB SERVER MODE (-web flag)
    Serves the same dashboard over HTTP and opens your external browser.
    Use -addr to pin a port for sharing on a LAN.

  CONSOLE MODE (-console or any output flag)
    Prints the metrics for a single adoption rate (-rate) or a whole
    adoption-rate sweep (-sweep) as aligned tables. Report flags write
    HTML, PDF or CSV artifacts for distribution.

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                           Embedded dashboard window (webview)
  %s -config my.yaml           Use custom configuration file
  %s -web                      Web server mode (opens external browser)
  %s -web -addr :8080          Web server on specific port
  %s -console                  Interactive mode selector in the terminal

  Console output:
  %s -rate 50                  Metrics at 50%% adoption
  %s -rate 75 -sweep           Metrics at 75%% plus the full sweep table

  Reports:
  %s -rate 50 -html            Static HTML report in a dated folder
  %s -rate 50 -pdf             One-page PDF report
  %s -csv                      Sweep CSV under exports/

Configuration:
  Edit config.yaml to customize the treatments, costs, outcome data and
  sweep range. Missing fields fall back to the built-in Zachistan dataset.
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	// Command line flags
	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	rate := flag.Float64("rate", -1, "Adoption rate in percent (0-100) for console output and reports")
	runSweep := flag.Bool("sweep", false, "Print the adoption-rate sweep table in the console")
	generateHTML := flag.Bool("html", false, "Generate a static HTML report in a dated folder")
	generatePDF := flag.Bool("pdf", false, "Generate a one-page PDF report")
	exportCSV := flag.Bool("csv", false, "Write the adoption-rate sweep as CSV under exports/")
	consoleMode := flag.Bool("console", false, "Use console interface instead of GUI (default is GUI)")
	webMode := flag.Bool("web", false, "Start web server mode (opens external browser)")
	uiMode := flag.Bool("ui", false, "Start embedded browser mode (webview window)")
	webAddr := flag.String("addr", "", "Web server address (overrides the configured server.address; use :0 for auto port)")
	flag.Parse()

	// Embedded browser mode
	if *uiMode {
		err := runEmbeddedUI(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Embedded UI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Web server mode (external browser)
	if *webMode {
		config, err := LoadConfig(*configFile)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		// -addr wins over the configured server.address
		addr := *webAddr
		if addr == "" {
			addr = "localhost:0"
			if config != nil {
				addr = config.Server.Address
			}
		}
		server := NewWebServer(config, addr)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Determine if we should run in console mode:
	// - Explicit -console flag, OR
	// - Any output/mode flags set (for automation/scripting)
	useConsole := *consoleMode || *rate >= 0 || *runSweep || *generateHTML || *generatePDF || *exportCSV

	if useConsole {
		runConsoleMode(*configFile, *rate, *runSweep, *generateHTML, *generatePDF, *exportCSV)
		return
	}

	// Default: GUI mode
	err := runGUI(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "GUI error: %v\n", err)
		// Fall back to console mode if GUI fails
		fmt.Println("Falling back to console mode...")
		runConsoleMode(*configFile, *rate, *runSweep, *generateHTML, *generatePDF, *exportCSV)
	}
}

// runConsoleMode runs the application in console/terminal mode
func runConsoleMode(configFile string, rate float64, runSweep, generateHTML, generatePDF, exportCSV bool) {
	// Load configuration
	config, err := LoadConfig(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			config, err = LoadDefaultConfig()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading built-in config: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("No %s found, using built-in Zachistan dataset.\n\n", configFile)
		} else {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// If no specific mode flags set, ask user which mode they want
	if rate < 0 && !runSweep && !generateHTML && !generatePDF && !exportCSV {
		switch promptForModeInitial(config) {
		case "metrics":
			rate = promptForRate(config)
		case "sweep":
			runSweep = true
		case "metrics-sweep":
			rate = promptForRate(config)
			runSweep = true
		case "html":
			rate = promptForRate(config)
			generateHTML = true
		case "pdf":
			rate = promptForRate(config)
			generatePDF = true
		case "csv":
			exportCSV = true
		case "quit":
			fmt.Println("Goodbye!")
			return
		}
	}

	if rate < 0 {
		rate = config.Dashboard.DefaultAdoptionRate
	}
	if err := ValidateAdoptionRate(rate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	PrintHeader(config)

	metrics := CalculateMetrics(rate, config)
	PrintMetrics(metrics, config)

	if runSweep {
		sweep, err := SweepFromConfig(config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running sweep: %v\n", err)
			os.Exit(1)
		}
		PrintSweepTable(sweep, config)
	}

	if generateHTML {
		sweep, err := SweepFromConfig(config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running sweep: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("2006-01-02_1504")
		outputDir := fmt.Sprintf("reports_%s", timestamp)
		report, err := GenerateImpactReportInDir(metrics, sweep, config, outputDir, timestamp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating HTML report: %v\n", err)
		} else {
			fmt.Printf("Generated report: %s\n", report)
			openBrowser(report)
		}
	}

	if generatePDF {
		pdfBytes, err := GenerateImpactPDFReport(config, metrics)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating PDF report: %v\n", err)
		} else {
			filename := fmt.Sprintf("impact-report-%.0fpct.pdf", rate)
			if err := os.WriteFile(filename, pdfBytes, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", filename, err)
			} else {
				fmt.Printf("Generated report: %s\n", filename)
			}
		}
	}

	if exportCSV {
		sweep, err := SweepFromConfig(config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running sweep: %v\n", err)
			os.Exit(1)
		}
		if err := os.MkdirAll("exports", 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating exports directory: %v\n", err)
			os.Exit(1)
		}
		path := filepath.Join("exports", fmt.Sprintf("impact-sweep-%s.csv", time.Now().Format("2006-01-02-150405")))
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", path, err)
			os.Exit(1)
		}
		if err := sweep.WriteCSV(f); err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		f.Close()
		fmt.Printf("Exported sweep: %s\n", path)
	}
}

// promptForModeInitial asks the user which console mode to run
func promptForModeInitial(config *Config) string {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                  CLAIRADOL IMPACT CALCULATOR                                 ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Select mode:")
	fmt.Println()
	fmt.Printf("  Single adoption rate (default %.0f%%):\n", config.Dashboard.DefaultAdoptionRate)
	fmt.Println("    1) Console output      - Lives saved and cost metrics for one rate")
	fmt.Println("    2) HTML report         - Static browser report in a dated folder")
	fmt.Println("    3) PDF report          - One-page report for distribution")
	fmt.Println()
	fmt.Printf("  Adoption-rate sweep (%g%% - %g%%, step %g%%):\n",
		config.Sweep.MinRate, config.Sweep.MaxRate, config.Sweep.StepSize)
	fmt.Println("    4) Sweep table         - Metrics across all adoption rates")
	fmt.Println("    5) Rate + sweep        - Single rate metrics plus the sweep table")
	fmt.Println("    6) CSV export          - Write the sweep to exports/")
	fmt.Println()
	fmt.Println("    q) Quit")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Enter choice [1]: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return "quit"
		}
		switch strings.TrimSpace(input) {
		case "", "1":
			return "metrics"
		case "2":
			return "html"
		case "3":
			return "pdf"
		case "4":
			return "sweep"
		case "5":
			return "metrics-sweep"
		case "6":
			return "csv"
		case "q", "Q":
			return "quit"
		}
		fmt.Println("Invalid choice, try again.")
	}
}

// promptForRate asks for an adoption rate, defaulting to the configured one
func promptForRate(config *Config) float64 {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("Adoption rate in %% [%.0f]: ", config.Dashboard.DefaultAdoptionRate)
		input, err := reader.ReadString('\n')
		if err != nil {
			return config.Dashboard.DefaultAdoptionRate
		}
		input = strings.TrimSpace(input)
		if input == "" {
			return config.Dashboard.DefaultAdoptionRate
		}
		var rate float64
		if _, err := fmt.Sscanf(input, "%f", &rate); err == nil {
			if ValidateAdoptionRate(rate) == nil {
				return rate
			}
		}
		fmt.Println("Please enter a number between 0 and 100.")
	}
}

// openBrowser opens a file or URL in the default browser
func openBrowser(filename string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", filename)
	case "darwin":
		cmd = exec.Command("open", filename)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", filename)
	default:
		fmt.Fprintf(os.Stderr, "Cannot open browser on %s\n", runtime.GOOS)
		return
	}

	err := cmd.Start()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
	}
}
