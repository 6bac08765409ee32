package commands

import (
	"fmt"
	"strings"

	"banking-reports/internal/cli/export"
	"banking-reports/internal/dto"
	apperrors "banking-reports/internal/errors"
	"banking-reports/internal/models"
	"banking-reports/internal/validation"

	"github.com/spf13/cobra"
)

const (
	formatJSON = "json"
	formatText = "text"
)

// ReportCmd runs one report against the ledger. It backs both generate and
// summarize; summary selects the projection.
type ReportCmd struct {
	query    dto.ReportQuery
	format   string
	summary  bool
	runtime  *Runtime
	reporter *export.Reporter
}

func NewGenerateCmd(rt *Runtime, reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{runtime: rt, reporter: reporter}
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate a report and print its envelope as JSON",
		Example: "  reportctl generate --domain financial --type balance_sheet --start 2024-01-01 --end 2024-03-31",
		Args:    cobra.NoArgs,
		RunE:    rc.run,
	}
	rc.bindFlags(cmd)
	return cmd
}

func NewSummarizeCmd(rt *Runtime, reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{runtime: rt, reporter: reporter, summary: true}
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Generate a report and print its headline summary",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}
	rc.bindFlags(cmd)
	cmd.Flags().StringVar(&rc.format, "format", formatText, "Output format (text or json)")
	return cmd
}

func (rc *ReportCmd) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rc.query.Domain, "domain", "", "Report domain (financial, regulatory, risk, customer)")
	cmd.Flags().StringVar(&rc.query.ReportType, "type", "", "Report type, see the catalog command")
	cmd.Flags().StringVar(&rc.query.StartDate, "start", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rc.query.EndDate, "end", "", "Period end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rc.query.AccountType, "account-type", "", "Restrict to one account type")
	cmd.Flags().StringVar(&rc.query.LoanType, "loan-type", "", "Restrict to one loan type")
	cmd.Flags().StringVar(&rc.query.Segment, "segment", "", "Restrict to one customer segment")

	_ = cmd.MarkFlagRequired("domain")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	if rc.summary && rc.format != formatText && rc.format != formatJSON {
		return fmt.Errorf("unsupported format %q, expected %s or %s", rc.format, formatText, formatJSON)
	}

	req, err := requestFromQuery(rc.query)
	if err != nil {
		return err
	}

	db, err := rc.runtime.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	engine, err := rc.runtime.engine(db)
	if err != nil {
		return err
	}

	if !rc.summary {
		envelope := engine.Dispatcher.Generate(cmd.Context(), req)
		if err := rc.reporter.JSON(envelope); err != nil {
			return err
		}
		return envelopeError(envelope)
	}

	envelope := engine.Dispatcher.Summary(cmd.Context(), req)
	if !envelope.Success || rc.format == formatJSON {
		if err := rc.reporter.JSON(envelope); err != nil {
			return err
		}
		return envelopeError(envelope)
	}
	summary, ok := envelope.Data.(*models.ReportSummary)
	if !ok {
		return fmt.Errorf("unexpected summary payload %T", envelope.Data)
	}
	return rc.reporter.Summary(summary)
}

// requestFromQuery applies the same rules as the HTTP query binding.
func requestFromQuery(query dto.ReportQuery) (models.ReportRequest, error) {
	if err := validation.GetValidator().Struct(query); err != nil {
		messages := validation.FieldMessages(err)
		if messages == nil {
			return models.ReportRequest{}, err
		}
		details := apperrors.FieldDetails(messages, " ")
		return models.ReportRequest{}, fmt.Errorf("invalid report request: %s", strings.Join(details, "; "))
	}
	return query.ToRequest()
}

func envelopeError(envelope *models.ReportEnvelope) error {
	if envelope.Success {
		return nil
	}
	return fmt.Errorf("%s: %s", envelope.Error.Code, envelope.Error.Message)
}
