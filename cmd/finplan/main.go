package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finplan/finplan/internal/cache"
	"github.com/finplan/finplan/internal/calculation"
	"github.com/finplan/finplan/internal/config"
	"github.com/finplan/finplan/internal/domain"
	"github.com/finplan/finplan/internal/output"
	"github.com/finplan/finplan/internal/server"
	"github.com/finplan/finplan/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "finplan",
	Short: "Personal finance calculator suite",
	Long:  "Mortgage, retirement, net-salary, budget and payoff calculators with a plan-file dashboard.",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "finplan %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// render formats a summary with the formatter named by --format.
func render(cmd *cobra.Command, summary *domain.PlanSummary) {
	format, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(format)
	if f == nil {
		log.Fatalf("unknown output format: %s (valid: %v)", format, output.FormatterNames())
	}
	data, err := f.Format(summary)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
}

func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine
}

func decimalFlag(cmd *cobra.Command, name string) decimal.Decimal {
	v, _ := cmd.Flags().GetFloat64(name)
	return decimal.NewFromFloat(v)
}

var mortgageCmd = &cobra.Command{
	Use:   "mortgage",
	Short: "Calculate a mortgage payment and amortization schedule",
	Run: func(cmd *cobra.Command, args []string) {
		years, _ := cmd.Flags().GetInt("years")
		in := domain.MortgageInputs{
			Principal:          decimalFlag(cmd, "principal"),
			AnnualRatePct:      decimalFlag(cmd, "rate"),
			TermYears:          years,
			MonthlyOverpayment: decimalFlag(cmd, "overpayment"),
			PropertyPrice:      decimalFlag(cmd, "price"),
		}
		if err := config.ValidateMortgageInputs(&in); err != nil {
			log.Fatal(err)
		}
		schedule := calculation.BuildAmortizationSchedule(in)
		render(cmd, &domain.PlanSummary{Mortgage: &schedule})
	},
}

var retirementCmd = &cobra.Command{
	Use:   "retirement",
	Short: "Project a pension pot against a retirement goal",
	Run: func(cmd *cobra.Command, args []string) {
		currentAge, _ := cmd.Flags().GetInt("current-age")
		retirementAge, _ := cmd.Flags().GetInt("retirement-age")
		in := domain.RetirementInputs{
			CurrentAge:          currentAge,
			RetirementAge:       retirementAge,
			StartingPot:         decimalFlag(cmd, "pot"),
			MonthlyContribution: decimalFlag(cmd, "contribution"),
			EmployerMatchPct:    decimalFlag(cmd, "match"),
			NominalReturnPct:    decimalFlag(cmd, "return"),
			AnnualFeesPct:       decimalFlag(cmd, "fees"),
			InflationRatePct:    decimalFlag(cmd, "inflation"),
			GoalAmount:          decimalFlag(cmd, "goal"),
			MonthlyIncomeNeed:   decimalFlag(cmd, "income-need"),
		}
		if err := config.ValidateRetirementInputs(&in); err != nil {
			log.Fatal(err)
		}
		summary := calculation.ProjectRetirement(in)
		render(cmd, &domain.PlanSummary{Retirement: &summary})
	},
}

var salaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Break a UK gross salary down to net pay",
	Run: func(cmd *cobra.Command, args []string) {
		in := domain.SalaryInputs{
			GrossAnnualSalary:      decimalFlag(cmd, "gross"),
			PensionContributionPct: decimalFlag(cmd, "pension"),
			WorkHoursFactor:        decimalFlag(cmd, "hours-factor"),
			HoursPerWeek:           decimalFlag(cmd, "hours"),
		}
		if err := config.ValidateSalaryInputs(&in); err != nil {
			log.Fatal(err)
		}
		result := calculation.CalculateNetSalary(in)
		render(cmd, &domain.PlanSummary{Salary: &result})
	},
}

var payoffCmd = &cobra.Command{
	Use:   "payoff",
	Short: "Calculate the monthly amount to hit a savings goal or clear a debt",
	Run: func(cmd *cobra.Command, args []string) {
		deadlineStr, _ := cmd.Flags().GetString("deadline")
		deadline, err := time.Parse("2006-01-02", deadlineStr)
		if err != nil {
			log.Fatalf("invalid --deadline %q: expected YYYY-MM-DD", deadlineStr)
		}
		kind, _ := cmd.Flags().GetString("kind")
		name, _ := cmd.Flags().GetString("name")

		g := domain.GoalOrDebt{
			Name:                 name,
			Kind:                 domain.GoalKind(kind),
			Deadline:             deadline,
			TargetAmount:         decimalFlag(cmd, "target"),
			AmountSaved:          decimalFlag(cmd, "saved"),
			Balance:              decimalFlag(cmd, "balance"),
			AnnualPercentageRate: decimalFlag(cmd, "apr"),
		}
		if err := config.ValidateGoalOrDebt(&g); err != nil {
			log.Fatal(err)
		}
		result := calculation.PlanPayoff(g, time.Now())
		render(cmd, &domain.PlanSummary{Payoffs: []domain.PayoffResult{result}})
	},
}

var planCmd = &cobra.Command{
	Use:   "plan [plan-file]",
	Short: "Compute every calculator in a plan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		summary := newEngine(cmd).RunPlan(plan, time.Now())
		render(cmd, summary)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [plan-file]",
	Short: "Validate a plan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Plan file %s is valid\n", args[0])
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [plan-file]",
	Short: "Open the interactive dashboard for a plan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := tea.NewProgram(tui.NewModel(args[0]), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := server.LoadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}

		logger, err := server.NewLogger(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			log.Fatal(err)
		}
		defer func() { _ = logger.Sync() }()

		var store cache.Repository = cache.NewMemory()
		if cfg.RedisAddr != "" {
			redisStore := cache.NewRedis(cfg.RedisAddr, cfg.CacheTTL)
			if err := redisStore.Ping(); err != nil {
				logger.Warn("redis unreachable, using in-memory cache",
					zap.String("addr", cfg.RedisAddr), zap.Error(err))
			} else {
				store = redisStore
			}
		}

		handler := server.NewHandler(logger, store, version)
		logger.Info("listening", zap.String("addr", cfg.ListenAddr))
		if err := http.ListenAndServe(cfg.ListenAddr, handler.Router()); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	},
}

func init() {
	for _, cmd := range []*cobra.Command{mortgageCmd, retirementCmd, salaryCmd, payoffCmd, planCmd} {
		cmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	}
	planCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	mortgageCmd.Flags().Float64("principal", 0, "Loan amount")
	mortgageCmd.Flags().Float64("rate", 0, "Annual interest rate percent")
	mortgageCmd.Flags().Int("years", 25, "Term in years")
	mortgageCmd.Flags().Float64("overpayment", 0, "Extra monthly overpayment")
	mortgageCmd.Flags().Float64("price", 0, "Property price, for loan-to-value")

	retirementCmd.Flags().Int("current-age", 30, "Current age")
	retirementCmd.Flags().Int("retirement-age", 67, "Retirement age")
	retirementCmd.Flags().Float64("pot", 0, "Current pot value")
	retirementCmd.Flags().Float64("contribution", 0, "Monthly contribution")
	retirementCmd.Flags().Float64("match", 0, "Employer match percent")
	retirementCmd.Flags().Float64("return", 5, "Nominal annual return percent")
	retirementCmd.Flags().Float64("fees", 0, "Annual fees percent")
	retirementCmd.Flags().Float64("inflation", 2.5, "Inflation rate percent")
	retirementCmd.Flags().Float64("goal", 500000, "Pot goal in today's money")
	retirementCmd.Flags().Float64("income-need", 0, "Monthly income needed in retirement, today's money")

	salaryCmd.Flags().Float64("gross", 0, "Gross annual salary")
	salaryCmd.Flags().Float64("pension", 0, "Pension contribution percent")
	salaryCmd.Flags().Float64("hours-factor", 1, "Work-hours factor for part time (0-1)")
	salaryCmd.Flags().Float64("hours", 37.5, "Hours per week, for the hourly rate")

	payoffCmd.Flags().String("name", "goal", "Goal or debt name")
	payoffCmd.Flags().String("kind", "savingsGoal", "savingsGoal or debt")
	payoffCmd.Flags().String("deadline", "", "Deadline date (YYYY-MM-DD)")
	payoffCmd.Flags().Float64("target", 0, "Savings target amount")
	payoffCmd.Flags().Float64("saved", 0, "Amount already saved")
	payoffCmd.Flags().Float64("balance", 0, "Debt balance")
	payoffCmd.Flags().Float64("apr", 0, "Debt annual percentage rate")

	serveCmd.Flags().String("config", "", "Path to server config file")

	rootCmd.AddCommand(mortgageCmd)
	rootCmd.AddCommand(retirementCmd)
	rootCmd.AddCommand(salaryCmd)
	rootCmd.AddCommand(payoffCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
