package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/signsheet/internal/sheet"
)

type generateFlags struct {
	out           string
	name          string
	office        string
	employee      string
	month         int
	year          int
	morning       string
	afternoon     string
	afternoonDays string
	holidays      string
	notes         string
	holidayFile   string
	locale        string
}

func generateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the sheet of one month",
		Example: `  signsheet generate --out sheet.xlsx --name "Benitez Wilson" --office CPI \
    --employee 32.746.256 --month 9 --year 2025 --holidays 2025-09-15 --notes 16:LEAVE`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			p := cfg.Params(f.month, f.year)
			flags := cmd.Flags()
			override := func(name string, dst *string, value string) {
				if flags.Changed(name) {
					*dst = value
				}
			}
			override("name", &p.Name, f.name)
			override("office", &p.Office, f.office)
			override("employee", &p.EmployeeID, f.employee)
			override("morning", &p.Morning, f.morning)
			override("afternoon", &p.Afternoon, f.afternoon)
			override("afternoon-days", &p.AfternoonDays, f.afternoonDays)
			override("holidays", &p.Holidays, f.holidays)
			override("notes", &p.Notes, f.notes)
			override("locale", &p.Locale, f.locale)

			holidayFile := cfg.Holidays.File
			override("holiday-file", &holidayFile, f.holidayFile)

			req, err := p.Request()
			if err != nil {
				return err
			}

			gen, err := newGenerator(holidayFile)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			res, err := gen.Generate(ctx, req, f.out)
			if err != nil {
				return err
			}

			logger.Debug("Generate command finished", zap.Duration("duration", res.Duration))
			fmt.Printf("✅ Sheet generated successfully at: %s\n", res.Path)
			fmt.Printf("   • %d days: %d regular, %d weekend, %d holiday(s), %d note(s)\n",
				res.DayRows, res.Regular, res.Weekend, res.Holidays, res.Notes)
			return nil
		},
	}

	now := time.Now()
	cmd.Flags().StringVar(&f.out, "out", "", "Output file (.xlsx; added when missing)")
	cmd.Flags().StringVar(&f.name, "name", "", "Employee full name")
	cmd.Flags().StringVar(&f.office, "office", "", "Office or unit")
	cmd.Flags().StringVar(&f.employee, "employee", "", "Employee ID")
	cmd.Flags().IntVar(&f.month, "month", int(now.Month()), "Month (1-12)")
	cmd.Flags().IntVar(&f.year, "year", now.Year(), "Year")
	cmd.Flags().StringVar(&f.morning, "morning", sheet.DefaultMorning, "Morning entry and exit, HH:MM,HH:MM")
	cmd.Flags().StringVar(&f.afternoon, "afternoon", sheet.DefaultAfternoon, "Afternoon entry and exit, HH:MM,HH:MM")
	cmd.Flags().StringVar(&f.afternoonDays, "afternoon-days", sheet.DefaultAfternoonDays, "Weekdays with an afternoon block (0=Monday … 6=Sunday)")
	cmd.Flags().StringVar(&f.holidays, "holidays", "", "Holidays, YYYY-MM-DD separated by commas")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Day notes, day:text separated by commas")
	cmd.Flags().StringVar(&f.holidayFile, "holiday-file", "", "File with one YYYY-MM-DD holiday per line")
	cmd.Flags().StringVar(&f.locale, "locale", sheet.LocaleEnglish, "Sheet labels language (en, es)")

	_ = cmd.MarkFlagRequired("out")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
