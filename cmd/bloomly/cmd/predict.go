package cmd

import (
	"context"
	"fmt"

	"github.com/nfrund/bloomly/internal/backend"
	"github.com/nfrund/bloomly/internal/domain"
	"github.com/nfrund/bloomly/internal/form"
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/nfrund/bloomly/internal/pubsub"
	"github.com/spf13/cobra"
)

type predictionOutput struct {
	Risk       string  `json:"pcos_risk"`
	Confidence float64 `json:"confidence"`
	Headline   string  `json:"headline"`
	Message    string  `json:"message"`
}

func newPredictCmd(a *cliApp) *cobra.Command {
	var in domain.Assessment

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Run a PCOS risk assessment",
		Long: `Send medical parameters and symptoms to the prediction backend and print the
risk assessment. Requires a signed-in session.

This tool provides an estimate and is not a substitute for professional
medical advice.`,
		Example: `  bloomly predict --age 25 --bmi 22.5 --amh 3.5 --fsh-lh 1.5 --irregular-periods --acne`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.open(nav.Detection); err != nil {
				return err
			}
			if err := domain.Validate(in); err != nil {
				return fmt.Errorf("invalid input: %s", formatFieldErrors(domain.FieldErrors(err)))
			}

			var (
				sub    form.Submission
				result *domain.Prediction
			)
			err := sub.Run(ctx, func(ctx context.Context) error {
				var err error
				result, err = a.deps.Backend.Predict(ctx, in)
				return err
			})
			if err != nil {
				return a.backendError(backend.PredictMessage(err), err)
			}
			publish(ctx, a, pubsub.AssessmentCompleted, pubsub.AssessmentPayload{
				Risk:       result.Risk,
				Confidence: result.Confidence,
			})

			out := predictionOutput{
				Risk:       result.Risk,
				Confidence: result.Confidence,
				Headline:   result.Headline(),
				Message:    result.Message(),
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Headline)
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&in.Age, "age", "", "age in years")
	flags.StringVar(&in.BMI, "bmi", "", "BMI in kg/m²")
	flags.StringVar(&in.AMH, "amh", "", "AMH in ng/mL")
	flags.StringVar(&in.FSHLH, "fsh-lh", "", "FSH/LH ratio")
	flags.BoolVar(&in.IrregularPeriods, "irregular-periods", false, "irregular or missed periods")
	flags.BoolVar(&in.Acne, "acne", false, "acne or oily skin")
	flags.BoolVar(&in.HairLoss, "hair-loss", false, "hair thinning or hair loss")
	flags.BoolVar(&in.WeightGain, "weight-gain", false, "unexplained weight gain")
	flags.BoolVar(&in.Darkening, "darkening", false, "darkening of skin")
	return cmd
}
