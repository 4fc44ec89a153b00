package main

import (
	"fmt"
	"os"

	"github.com/joeydtaylor/steeze-apphost/pkg/codec"
	"github.com/joeydtaylor/steeze-apphost/pkg/dom"
	"github.com/joeydtaylor/steeze-apphost/pkg/env"
	"github.com/joeydtaylor/steeze-apphost/pkg/manifest"
	"github.com/joeydtaylor/steeze-apphost/pkg/registry"
	"github.com/joeydtaylor/steeze-apphost/pkg/render"
	"github.com/joeydtaylor/steeze-apphost/pkg/serverfx"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "apphost",
		Short:         "Serve and render registered applications",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().Bool("verbose", false, "Write registry diagnostics to stderr")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newKeysCmd())
	cmd.AddCommand(newPrerenderCmd())
	cmd.AddCommand(newRunCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the pages described by the host manifest",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			app := fx.New(
				serverfx.Module(serverfx.DefaultOptions()),
				fx.Provide(func(rn render.Renderer, log *zap.Logger) (*registry.Registry, error) {
					return serverfx.ProvideRegistry(func(reg *registry.Registry) error {
						return registerDemoApps(reg, rn)
					})(rn, log)
				}),
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List registered application keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := newRegistry(cmd)
			if err != nil {
				return err
			}
			for _, k := range reg.AppKeys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

func newPrerenderCmd() *cobra.Command {
	var propsJSON string
	cmd := &cobra.Command{
		Use:   "prerender KEY",
		Short: "Print the static markup of an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := newRegistry(cmd)
			if err != nil {
				return err
			}
			props, err := parseProps(propsJSON)
			if err != nil {
				return err
			}
			out, err := reg.PrerenderApplication(args[0], registry.AppParams{InitialProps: props})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&propsJSON, "props", "", "Initial props as a JSON object")
	return cmd
}

func newRunCmd() *cobra.Command {
	var (
		propsJSON string
		shellPath string
		rootID    string
	)
	cmd := &cobra.Command{
		Use:   "run KEY",
		Short: "Mount an application into a page and print the page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := newRegistry(cmd)
			if err != nil {
				return err
			}
			props, err := parseProps(propsJSON)
			if err != nil {
				return err
			}
			doc, err := loadDocument(shellPath, rootID)
			if err != nil {
				return err
			}
			if err := reg.RunApplication(args[0], registry.AppParams{
				InitialProps: props,
				RootTag:      doc.Root(rootID),
			}); err != nil {
				return err
			}
			out, err := doc.HTML()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&propsJSON, "props", "", "Initial props as a JSON object")
	cmd.Flags().StringVar(&shellPath, "shell", "", "HTML shell document (default: blank page)")
	cmd.Flags().StringVar(&rootID, "root", manifest.DefaultRootID, "Id of the mount element")
	return cmd
}

func newRegistry(cmd *cobra.Command) (*registry.Registry, error) {
	log := zap.NewNop()
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		log = zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.InfoLevel))
	}
	rn := serverfx.ProvideRenderer(env.LoadOrDefault())
	reg := registry.New(rn, registry.WithLogger(log))
	if err := registerDemoApps(reg, rn); err != nil {
		return nil, err
	}
	return reg, nil
}

func parseProps(s string) (render.Props, error) {
	if s == "" {
		return render.Props{}, nil
	}
	var p render.Props
	if err := codec.JSONStrict.Unmarshal([]byte(s), &p); err != nil {
		return nil, fmt.Errorf("--props: %w", err)
	}
	return p, nil
}

func loadDocument(shellPath, rootID string) (*dom.Document, error) {
	if shellPath == "" {
		return dom.Blank(rootID), nil
	}
	f, err := os.Open(shellPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.Parse(f)
}
