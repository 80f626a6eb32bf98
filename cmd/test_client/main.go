package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultEndpoint = "http://localhost:12009/mcp/stream"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	endpoint := os.Getenv("MCP_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "sonarr-mcp-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testListSeries(ctx, session)
	testGetCalendar(ctx, session)

	// Searching talks to indexers, so it only runs when asked for.
	if title := os.Getenv("SEARCH_SERIES_TITLE"); title != "" {
		testMonitoredEpisodes(ctx, session, title)
		testSearchMonitoredEpisodes(ctx, session, title)
	}

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: tools/list")

	res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		log.Printf("tools/list failed: %v", err)
		return
	}

	for _, tool := range res.Tools {
		fmt.Printf("  %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println("tools/list passed")
}

func testListSeries(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: listSeries")
	call(ctx, session, "listSeries", map[string]any{})
}

func testGetCalendar(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: getCalendar")

	// Test 1: default window, today plus seven days
	fmt.Println("\n  Test 1: default window")
	call(ctx, session, "getCalendar", map[string]any{})

	// Test 2: explicit range
	fmt.Println("\n  Test 2: explicit range")
	start := time.Now().UTC().AddDate(0, 0, -3).Format("2006-01-02")
	end := time.Now().UTC().Format("2006-01-02")
	call(ctx, session, "getCalendar", map[string]any{
		"startDate": start,
		"endDate":   end,
	})
}

func testMonitoredEpisodes(ctx context.Context, session *mcp.ClientSession, title string) {
	fmt.Println("\nTEST: getMonitoredEpisodes")
	call(ctx, session, "getMonitoredEpisodes", map[string]any{"seriesTitle": title})
}

func testSearchMonitoredEpisodes(ctx context.Context, session *mcp.ClientSession, title string) {
	fmt.Println("\nTEST: searchMonitoredEpisodes")
	call(ctx, session, "searchMonitoredEpisodes", map[string]any{"seriesTitle": title})
}

func call(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return
	}
	if result.IsError {
		log.Printf("%s returned a tool error", name)
	}

	printResult(result)
	fmt.Printf("%s passed\n", name)
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
