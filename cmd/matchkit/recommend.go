package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/engine"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend jobs for a seeker or candidates for a job",
}

var recommendJobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Recommend jobs for a seeker",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return recommendJobs(cmd)
	},
}

var recommendCandidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Recommend candidates for a job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return recommendCandidates(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.AddCommand(recommendJobsCmd, recommendCandidatesCmd)

	recommendCmd.PersistentFlags().IntP("top-n", "n", 0, "number of results (default from config)")
	recommendCmd.PersistentFlags().Float64P("threshold", "t", -1, "model probability threshold (default from config)")
	recommendCmd.PersistentFlags().BoolP("explain", "x", false, "include feature values and labels")

	recommendJobsCmd.Flags().StringP("seeker", "s", "", "seeker ID")
	_ = recommendJobsCmd.MarkFlagRequired("seeker")
	recommendCandidatesCmd.Flags().StringP("job", "J", "", "job ID")
	_ = recommendCandidatesCmd.MarkFlagRequired("job")
}

func requestOptions(cmd *cobra.Command) []engine.RequestOption {
	var opts []engine.RequestOption
	if n, _ := cmd.Flags().GetInt("top-n"); n > 0 {
		opts = append(opts, engine.TopN(n))
	}
	if t, _ := cmd.Flags().GetFloat64("threshold"); t >= 0 {
		opts = append(opts, engine.Threshold(t))
	}
	if x, _ := cmd.Flags().GetBool("explain"); x {
		opts = append(opts, engine.Explain())
	}
	return opts
}

func recommendJobs(cmd *cobra.Command) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	id, _ := cmd.Flags().GetString("seeker")
	var seeker *core.Seeker
	var jobs []*core.Job
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		seeker, err = a.repo.GetSeeker(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = a.repo.ListJobs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return loadError(a.log, "seeker_id", id, err)
	}

	recs := a.engine.RecommendJobsForSeeker(ctx, seeker, jobs, requestOptions(cmd)...)
	return writeJSON(recs)
}

func recommendCandidates(cmd *cobra.Command) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	id, _ := cmd.Flags().GetString("job")
	var job *core.Job
	var seekers []*core.Seeker
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		job, err = a.repo.GetJob(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		seekers, err = a.repo.ListSeekers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return loadError(a.log, "job_id", id, err)
	}

	recs := a.engine.RecommendCandidatesForJob(ctx, job, seekers, requestOptions(cmd)...)
	return writeJSON(recs)
}

// loadError 锚点不存在是输入问题，记 Warn；其余读取失败记 Error。
func loadError(log *zap.Logger, field, id string, err error) error {
	if core.IsNotFound(err) {
		log.Warn("anchor not found", zap.String(field, id))
		return err
	}
	log.Error("loading snapshots", zap.String(field, id), zap.Error(err))
	return err
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
