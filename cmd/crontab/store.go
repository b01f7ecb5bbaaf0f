package main

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/vnykmshr/crontab/internal/logx"
	"github.com/vnykmshr/crontab/pkg/source"
)

func newStoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage crontab lines kept in Redis",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "put <id> <line>",
		Short: "Validate a line and store it under id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(ctx context.Context, s *source.RedisStore) error {
				entry, err := s.Put(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				a.log.Info("stored", logx.String("id", entry.ID))
				return writeEntries(cmd.OutOrStdout(), a.output, []source.Entry{entry})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Print the stored line for id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(ctx context.Context, s *source.RedisStore) error {
				entry, err := s.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return writeEntries(cmd.OutOrStdout(), a.output, []source.Entry{entry})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every stored line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd.Context(), func(ctx context.Context, s *source.RedisStore) error {
				entries, err := s.List(ctx)
				if werr := writeEntries(cmd.OutOrStdout(), a.output, entries); werr != nil {
					return werr
				}
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Remove the line stored under id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(ctx context.Context, s *source.RedisStore) error {
				if err := s.Delete(ctx, args[0]); err != nil {
					return err
				}
				a.log.Info("deleted", logx.String("id", args[0]))
				return nil
			})
		},
	})

	return cmd
}

func (a *app) withStore(ctx context.Context, fn func(context.Context, *source.RedisStore) error) error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	defer func() { _ = rdb.Close() }()

	store, err := source.NewRedisStore(source.RedisConfig{
		Redis:   rdb,
		Key:     a.cfg.Redis.Key,
		Parser:  a.parser,
		Metrics: a.parser.Registry(),
	})
	if err != nil {
		return err
	}
	a.log.Debug("using redis store",
		logx.String("addr", a.cfg.Redis.Addr),
		logx.String("key", a.cfg.Redis.Key))
	return fn(ctx, store)
}
