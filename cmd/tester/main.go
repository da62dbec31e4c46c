package main

import (
	"classroom-relay/domain/event"
	"classroom-relay/infrastructure/ws"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

func main() {
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: config error: %v\n", err)
		os.Exit(2)
	}
	if err = newRootCmd(&config).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd exposes the environment configuration as flags; flags win.
func newRootCmd(config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tester",
		Short:         "Join a classroom relay room and print what it sends",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if config.PeerID == "" {
				config.PeerID = uuid.NewString()
			}
			return run(cmd.Context(), *config)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&config.RelayURL, "url", config.RelayURL, "relay websocket endpoint")
	flags.StringVarP(&config.RoomID, "room", "r", config.RoomID, "room to join")
	flags.StringVarP(&config.UserName, "name", "n", config.UserName, "display name")
	flags.StringVar(&config.UserRole, "role", config.UserRole, "teacher or student")
	flags.StringVar(&config.PeerID, "peer", config.PeerID, "peer id, random when empty")
	flags.DurationVar(&config.ReportInterval, "report-every", config.ReportInterval, "send report-count at this interval, 0 disables")
	flags.BoolVar(&config.Colours, "colours", config.Colours, "colorized output")
	return cmd
}

func run(parent context.Context, config Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, config.RelayURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", config.RelayURL, err)
	}
	defer conn.Close()

	p := printer{colours: config.Colours}
	p.header(fmt.Sprintf("Joining %s as %s (%s)", config.RoomID, config.UserName, config.UserRole))

	// gorilla allows one concurrent writer
	outbox := make(chan ws.Envelope, 16)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-outbox:
				if err := conn.WriteJSON(msg); err != nil {
					p.error(err)
					return
				}
			}
		}
	}()

	if err = enqueue(ctx, outbox, event.JoinRoom, map[string]any{
		"roomId":   config.RoomID,
		"userName": config.UserName,
		"userRole": config.UserRole,
		"peerId":   config.PeerID,
	}); err != nil {
		return err
	}

	if config.ReportInterval > 0 {
		go report(ctx, outbox, config)
	}

	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		_ = conn.Close()
	}()

	var members roster
	for {
		var msg ws.Envelope
		if err = conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		p.event(msg)
		changed, err := members.apply(msg.Event, msg.Data)
		if err != nil {
			p.error(err)
			continue
		}
		if changed {
			members.render(os.Stdout)
		}
	}
}

func enqueue(ctx context.Context, outbox chan<- ws.Envelope, name event.Name, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	select {
	case outbox <- ws.Envelope{Event: name, Data: raw}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func report(ctx context.Context, outbox chan<- ws.Envelope, config Config) {
	ticker := time.NewTicker(config.ReportInterval)
	defer ticker.Stop()
	count := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count++
			_ = enqueue(ctx, outbox, event.ReportCount, map[string]any{
				"roomId": config.RoomID,
				"count":  count,
				"peerId": config.PeerID,
			})
		}
	}
}

type printer struct {
	colours bool
}

func (p printer) header(text string) {
	line := fmt.Sprintf("  ====== %s ======", text)
	if p.colours {
		line = color.New(color.BgBlack, color.FgGreen).Render(line)
	}
	fmt.Println(line)
}

func (p printer) event(msg ws.Envelope) {
	name := string(msg.Event)
	if p.colours {
		name = color.Cyan.Render(name)
	}
	fmt.Printf("%s %s %s\n", time.Now().Format("15:04:05"), name, string(msg.Data))
}

func (p printer) error(err error) {
	text := "error: " + err.Error()
	if p.colours {
		text = color.Red.Render(text)
	}
	fmt.Println(text)
}
