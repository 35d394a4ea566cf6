package cmd

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// recommendation pairs a human-readable task with a ready-to-run
// command and its category.
type recommendation struct {
	Task     string
	Command  string
	Category string
}

// allRecommendations is the full catalogue shown (sampled) on startup.
var allRecommendations = []recommendation{
	{"Remote Group Policy Update", "gpupdate /force", "System Administration"},
	{"Check All Drive Space", "Get-WmiObject -Class Win32_LogicalDisk | Select-Object DeviceID,Size,FreeSpace", "System Monitoring"},
	{"List Running Services", "Get-Service | Where-Object {$_.Status -eq 'Running'}", "Process Management"},
	{"Show Top CPU Processes", "Get-Process | Sort-Object CPU -Descending | Select-Object -First 10", "Performance Monitoring"},
	{"Install Web Scraping Package", "pip install requests beautifulsoup4", "Development"},
	{"Find Large Files (1GB+)", "Get-ChildItem -Recurse | Where-Object {$_.Length -gt 1GB}", "File Management"},
	{"Show Network Connections", "netstat -an", "Network Diagnostics"},
	{"Backup Registry Key", `reg export HKLM\SOFTWARE\backup.reg`, "System Backup"},
	{"Restart Print Spooler", "Restart-Service Spooler", "Service Management"},
	{"Show System Uptime", "Get-CimInstance -ClassName Win32_OperatingSystem | Select-Object LastBootUpTime", "System Information"},
	{"List Installed Programs", "Get-WmiObject -Class Win32_Product | Select-Object Name,Version", "Software Management"},
	{"Check Memory Usage", "Get-Process | Sort-Object WorkingSet -Descending | Select-Object -First 10", "Performance Monitoring"},
	{"Windows Defender Scan", "Start-MpScan -ScanType QuickScan", "Security"},
	{"Create Daily Task", "schtasks /create /tn 'DailyTask' /tr 'notepad.exe' /sc daily", "Task Automation"},
	{"Export System Event Logs", "Get-EventLog -LogName System -Newest 100 | Export-Csv events.csv", "System Diagnostics"},
	{"Check Firewall Status", "Get-NetFirewallProfile", "Security"},
	{"Compress to ZIP", `Compress-Archive -Path C:\temp\* -DestinationPath archive.zip`, "File Management"},
	{"Show Network Adapters", "Get-NetAdapter", "Network Diagnostics"},
	{"List User Accounts", "Get-LocalUser", "User Management"},
	{"Clear Temp Files", `Remove-Item -Path $env:TEMP\* -Recurse -Force`, "System Cleanup"},
	{"Check Drive Health", "Get-PhysicalDisk | Get-StorageReliabilityCounter", "System Diagnostics"},
	{"Show Environment Variables", "Get-ChildItem Env:", "System Configuration"},
	{"Kill Process by Name", "Stop-Process -Name 'notepad' -Force", "Process Management"},
	{"Create New User", "New-LocalUser -Name 'NewUser' -Password (ConvertTo-SecureString 'Password123' -AsPlainText -Force)", "User Management"},
}

// showRecommendations prints a random sample of the catalogue and
// returns the number → command mapping for quick selection.
func showRecommendations(n int) map[string]string {
	selected := sampleRecommendations(n)

	green := color.New(color.FgGreen, color.Bold)
	magenta := color.New(color.FgMagenta)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	green.Println("💡 Recommended Commands")
	fmt.Println(strings.Repeat("─", 80))

	byNumber := make(map[string]string, len(selected))
	for i, rec := range selected {
		num := strconv.Itoa(i + 1)
		magenta.Printf("[%s] ", num)
		cyan.Println(rec.Task)
		fmt.Printf("    Command: %s\n", rec.Command)
		yellow.Printf("    Category: %s\n\n", rec.Category)
		byNumber[num] = rec.Command
	}

	yellow.Printf("💡 Type the number (1-%d) to execute a command, or enter your own description!\n\n", len(selected))
	return byNumber
}

func sampleRecommendations(n int) []recommendation {
	if n > len(allRecommendations) {
		n = len(allRecommendations)
	}
	perm := rand.Perm(len(allRecommendations))
	out := make([]recommendation, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, allRecommendations[idx])
	}
	return out
}
