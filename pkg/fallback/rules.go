package fallback

import "github.com/siahcodes/quickcmd/pkg/model"

// Rule maps a set of lower-case trigger phrases to a suggestion
// template. Rules may overlap in triggers; table order is part of the
// matcher contract (ties keep the earlier rule).
type Rule struct {
	Triggers   []string
	Suggestion model.Suggestion
}

// DefaultRules is the static, read-only intent table used when no AI
// backend is usable. Constructed once at startup and never mutated.
var DefaultRules = []Rule{
	// Group Policy
	{
		Triggers: []string{"group policy", "gpo", "policy update"},
		Suggestion: model.Suggestion{
			Command:     "gpupdate /force",
			Description: "Force Group Policy update on local machine",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"remote group policy", "remote gpo"},
		Suggestion: model.Suggestion{
			Command:     `Invoke-GPUpdate -Computer "ComputerName" -Force`,
			Description: "Force Group Policy update on remote computer",
			Shell:       model.ShellPowerShell,
		},
	},

	// Services
	{
		Triggers: []string{"running services", "active services", "list services"},
		Suggestion: model.Suggestion{
			Command:     `Get-Service | Where-Object {$_.Status -eq "Running"} | Sort-Object Name`,
			Description: "List all running services sorted by name",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"stopped services", "inactive services"},
		Suggestion: model.Suggestion{
			Command:     `Get-Service | Where-Object {$_.Status -eq "Stopped"} | Sort-Object Name`,
			Description: "List all stopped services",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"start service", "enable service"},
		Suggestion: model.Suggestion{
			Command:     `Start-Service -Name "ServiceName"`,
			Description: "Start a specific service (replace ServiceName)",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"stop service", "disable service"},
		Suggestion: model.Suggestion{
			Command:     `Stop-Service -Name "ServiceName"`,
			Description: "Stop a specific service (replace ServiceName)",
			Shell:       model.ShellPowerShell,
		},
	},

	// Disk and storage
	{
		Triggers: []string{"disk space", "storage", "free space", "drive space"},
		Suggestion: model.Suggestion{
			Command:     `Get-WmiObject -Class Win32_LogicalDisk | Select-Object DeviceID,@{Name="Size(GB)";Expression={[math]::Round($_.Size/1GB,2)}},@{Name="FreeSpace(GB)";Expression={[math]::Round($_.FreeSpace/1GB,2)}},@{Name="PercentFree";Expression={[math]::Round(($_.FreeSpace/$_.Size)*100,2)}}`,
			Description: "Show disk space with sizes in GB and percentage free",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"c drive", "c: drive", "system drive"},
		Suggestion: model.Suggestion{
			Command:     `Get-WmiObject -Class Win32_LogicalDisk -Filter "DeviceID='C:'" | Select-Object Size,FreeSpace`,
			Description: "Check C: drive space specifically",
			Shell:       model.ShellPowerShell,
		},
	},

	// Processes
	{
		Triggers: []string{"running processes", "process list", "task list"},
		Suggestion: model.Suggestion{
			Command:     "Get-Process | Sort-Object CPU -Descending | Select-Object -First 20 Name,CPU,WorkingSet,Id",
			Description: "List top 20 processes by CPU usage",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"kill process", "stop process", "end process"},
		Suggestion: model.Suggestion{
			Command:     `Stop-Process -Name "ProcessName" -Force`,
			Description: "Kill a process by name (replace ProcessName)",
			Shell:       model.ShellPowerShell,
		},
	},

	// Network
	{
		Triggers: []string{"network", "ip config", "network adapter", "network interface"},
		Suggestion: model.Suggestion{
			Command:     `Get-NetAdapter | Where-Object {$_.Status -eq "Up"} | Select-Object Name,InterfaceDescription,LinkSpeed`,
			Description: "List active network adapters",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"ip address", "ip info"},
		Suggestion: model.Suggestion{
			Command:     `Get-NetIPAddress | Where-Object {$_.AddressFamily -eq "IPv4" -and $_.IPAddress -ne "127.0.0.1"}`,
			Description: "Show IPv4 addresses (excluding localhost)",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"ping", "test connection"},
		Suggestion: model.Suggestion{
			Command:     `Test-NetConnection -ComputerName "hostname" -Port 80`,
			Description: "Test network connectivity (replace hostname)",
			Shell:       model.ShellPowerShell,
		},
	},

	// System information
	{
		Triggers: []string{"system info", "computer info", "system details"},
		Suggestion: model.Suggestion{
			Command:     "Get-ComputerInfo | Select-Object WindowsProductName,WindowsVersion,TotalPhysicalMemory,CsProcessors",
			Description: "Display basic system information",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"uptime", "system uptime"},
		Suggestion: model.Suggestion{
			Command:     "(Get-Date) - (Get-CimInstance Win32_OperatingSystem).LastBootUpTime",
			Description: "Show system uptime",
			Shell:       model.ShellPowerShell,
		},
	},

	// Event logs
	{
		Triggers: []string{"event log", "system events", "error log"},
		Suggestion: model.Suggestion{
			Command:     `Get-EventLog -LogName System -Newest 20 | Where-Object {$_.EntryType -eq "Error"}`,
			Description: "Show latest 20 system errors",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"application log", "app events"},
		Suggestion: model.Suggestion{
			Command:     "Get-EventLog -LogName Application -Newest 20",
			Description: "Show latest 20 application events",
			Shell:       model.ShellPowerShell,
		},
	},

	// File operations
	{
		Triggers: []string{"create directory", "new folder", "mkdir", "make directory"},
		Suggestion: model.Suggestion{
			Command:     `New-Item -ItemType Directory -Name "NewFolder"`,
			Description: "Create a new directory (replace NewFolder with desired name)",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"list files", "directory listing", "ls", "dir"},
		Suggestion: model.Suggestion{
			Command:     "Get-ChildItem | Sort-Object Name",
			Description: "List files and folders in current directory",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"find files", "search files"},
		Suggestion: model.Suggestion{
			Command:     `Get-ChildItem -Path . -Recurse -Filter "*.txt" | Select-Object Name,FullName,Length`,
			Description: "Find all .txt files recursively (change *.txt for other types)",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"copy files", "copy"},
		Suggestion: model.Suggestion{
			Command:     `Copy-Item -Path "source" -Destination "destination" -Recurse`,
			Description: "Copy files/folders recursively",
			Shell:       model.ShellPowerShell,
		},
	},

	// Python package management
	{
		Triggers: []string{"install package", "pip install", "python package"},
		Suggestion: model.Suggestion{
			Command:     "pip install requests",
			Description: "Install a Python package (replace requests with package name)",
			Shell:       model.ShellPython,
		},
	},
	{
		Triggers: []string{"list packages", "pip list", "installed packages"},
		Suggestion: model.Suggestion{
			Command:     "pip list",
			Description: "List all installed Python packages",
			Shell:       model.ShellPython,
		},
	},
	{
		Triggers: []string{"web scraping", "scrape web"},
		Suggestion: model.Suggestion{
			Command:     "pip install requests beautifulsoup4 lxml",
			Description: "Install popular web scraping packages",
			Shell:       model.ShellPython,
		},
	},
	{
		Triggers: []string{"data analysis", "data science"},
		Suggestion: model.Suggestion{
			Command:     "pip install pandas numpy matplotlib seaborn",
			Description: "Install data analysis packages",
			Shell:       model.ShellPython,
		},
	},

	// Windows features
	{
		Triggers: []string{"windows features", "optional features"},
		Suggestion: model.Suggestion{
			Command:     `Get-WindowsOptionalFeature -Online | Where-Object {$_.State -eq "Enabled"}`,
			Description: "List enabled Windows optional features",
			Shell:       model.ShellPowerShell,
		},
	},
	{
		Triggers: []string{"installed programs", "software list"},
		Suggestion: model.Suggestion{
			Command:     "Get-WmiObject -Class Win32_Product | Select-Object Name,Version | Sort-Object Name",
			Description: "List installed programs",
			Shell:       model.ShellPowerShell,
		},
	},
}
