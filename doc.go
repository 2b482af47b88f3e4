// Package toollog provides session-scoped logging for tools hosted by a
// long-lived GIS desktop application.
//
// Such hosts load a tool, run it, and keep the process alive for the next
// run, so any logging state a tool sets up survives into later invocations.
// [Session.Init] makes that safe: it tears down every handler a previous
// invocation attached and installs a fresh file handler, so each run starts
// from a known state. [Session.FlushAndClose] should be called at the end of
// every run; hosts have been observed to delay or drop the tail of the log
// without it.
//
// Typical usage inside a hosted tool:
//
//	sess := toollog.New()
//	if err := sess.Init(`C:\logs\tool.txt`, toollog.WithLevel(toollog.LevelDebug)); err != nil {
//		return err
//	}
//	defer sess.FlushAndClose()
//
//	sess.Info("processing %d features", n)
//
// Log lines render from a template with named placeholders (%(asctime)s,
// %(levelname)s, %(message)s) and a strftime date format. When no template
// is supplied, [DefaultTemplate] embeds the invoking user and the
// upper-cased host name next to the timestamp.
//
// A [RoutedHandler] bridges records to the host's severity-keyed message
// channels, so log output also appears in the tool window as messages,
// warnings, or errors:
//
//	sess.AddHandler(
//		toollog.NewRoutedHandler(host, `C:\logs\tool_routed.txt`, 10, 3),
//		toollog.WithLevel(toollog.LevelInfo),
//	)
//
// Hosts that drive tools through a CLI can wire configuration with [Config],
// which integrates with [github.com/spf13/pflag] flags, shell completion via
// [github.com/spf13/cobra], and YAML documents:
//
//	cfg := toollog.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	err := cfg.Apply(toollog.Default())
//
// The package-level [Init], [AddHandler], [FlushAndClose], [Active], and
// leveled functions operate on a shared default session for scripts that do
// not want to thread a [Session] through.
package toollog
