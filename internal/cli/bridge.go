package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/4rankng/tradeassist/internal/bridge"
	"github.com/4rankng/tradeassist/internal/display"
)

func newBridgeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Talk to the external messaging client",
		Long: `The bridge shells out to an external messaging client binary and
exchanges one JSON request/response pair per operation. The client
binary path and session file come from the configuration.`,
	}

	cmd.AddCommand(newBridgeInitCmd(a))
	cmd.AddCommand(newBridgeFriendsCmd(a))
	cmd.AddCommand(newBridgeGroupsCmd(a))
	cmd.AddCommand(newBridgeWhoamiCmd(a))

	return cmd
}

func (a *app) bridgeClient() *bridge.Client {
	return bridge.NewClient(a.cfg.BridgeClientPath, a.cfg.BridgeSessionPath)
}

func newBridgeInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the messaging session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.bridgeClient().Initialize(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(display.Success("✅ session initialized"))
			return nil
		},
	}
}

func newBridgeFriendsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "friends",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			friends, err := a.bridgeClient().GetAllFriends(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(friends)
			}

			rows := make([][]string, 0, len(friends))
			for _, f := range friends {
				rows = append(rows, []string{f.ID, f.Name})
			}
			fmt.Print(display.Table([]string{"ID", "NAME"}, rows))
			fmt.Println(display.Countf("%d friends", len(friends)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON")

	return cmd
}

func newBridgeGroupsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List group chats",
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := a.bridgeClient().GetAllGroups(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(groups)
			}

			rows := make([][]string, 0, len(groups))
			for _, g := range groups {
				rows = append(rows, []string{g.ID, g.Name, strconv.Itoa(g.Members)})
			}
			fmt.Print(display.Table([]string{"ID", "NAME", "MEMBERS"}, rows))
			fmt.Println(display.Countf("%d groups", len(groups)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON")

	return cmd
}

func newBridgeWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the messaging account ID for this session",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.bridgeClient().GetOwnID(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	}
}
