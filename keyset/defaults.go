package keyset

// DefaultOverrides returns the override lists for the aice-web front end
// and the frontary component library.
func DefaultOverrides() Overrides {
	return Overrides{
		Exclude:        append([]string(nil), defaultExclude...),
		UIInclude:      append([]string(nil), defaultUIInclude...),
		LibraryInclude: append([]string(nil), defaultLibraryInclude...),
	}
}

var defaultExclude = []string{
	"&nbsp;",
	`\t`,
	"Content-Type",
	"DCE/RPC Blocklist",
	"DNS Blocklist",
	"FTP Blocklist",
	"FTP Brute Force",
	"FTP Plain Text",
	"HTTP Blocklist",
	"Kerberos Blocklist",
	"LDAP Blocklist",
	"LDAP Brute Force",
	"LDAP Plain Text",
	"Locky Ransomware",
	"MQTT Blocklist",
	"Multi-host Port Scan",
	"NFS Blocklist",
	"NTLM Blocklist",
	"Port Scan",
	"RDP Blocklist",
	"SMTP Blocklist",
	"SMB Blocklist",
	"SSH Blocklist",
	"TLS Blocklist",
	"Y-m-d H:i",
	"account",
	"allowlist",
	"application/json",
	"blocklist",
	"customer",
	"en-US",
	"ko-KR",
	"node",
	"sampling policy",
	"statisticsChart-{}-{}-{}-{}-{}-{}",
	"text",
	"triage policy",
	"trusted domains",
}

var defaultLibraryInclude = []string{
	"(Input Example: 192.168.1.100 ~ 192.168.1.200)",
	"(Input Example: 192.168.10.0/24)",
	"Add",
	"Add a network",
	"Add another condition",
	"Comparison",
	"If you want to change your password, input a new one.",
	"Invalid GraphQL query",
	"Invalid GraphQL response",
	"Invalid IP address",
	"Invalid input",
	"Invalid input (valid examples: 10.1.1.1 ~ 10.1.1.20)",
	"Invalid input (valid examples: 10.84.1.7, 10.1.1.1 ~ 10.1.1.20, 192.168.10.0/24)",
	"Multiple IP addresses possible",
	"Multiple inputs possible (valid examples: 10.84.1.7, 10.1.1.1 ~ 10.1.1.20, 192.168.10.0/24)",
	"No success HTTPS status code",
	"Required",
	"The input already exists.",
	"The maximum number of input was reached.",
	"This field is required.",
	"Type",
	"Unauthorized",
	"Unknown error",
	"Wrong input",
	"Your password is too short.",
	"Your password must contain at least one lowercase alphabet.",
	"Your password must contain at least one number.",
	"Your password must contain at least one special character.",
	"Your password must contain at least one uppercase alphabet.",
	"Your password must not constain any spaces.",
	"Your password must not contain any control characters.",
	"Your password must not contain consecutive repeating characters.",
	"Your password must not contain more than 3 adjacent keyboard characters.",
	"no spaces, more than 7 characters, at least one number/uppercase/lowercase/special characters",
	"no spaces, more than 8 characters, at least one number/uppercase/lowercase/special characters, no consecutive repetition, and less than 4 adjacent keyboard characters",
}

var defaultUIInclude = []string{
	"1 hour",
	"1 min.",
	"10 min.",
	"10 minutes",
	"15 minutes",
	"2 days",
	"2 hours",
	"2 weeks",
	"3 min.",
	"30 min.",
	"30 minutes",
	"30 sec.",
	"5 min.",
	"5 minutes",
	"6 hours",
	"DNS",
	"Entire",
	"Events",
	"PDF",
	"RDP",
	"SSH",
	"Save FTP Files",
	"Save HTTP Files",
	"Save Packets",
	"Save SMTP Files",
	"Session",
	"Semi-supervised Learning",
	"System Administrator",
	"Token",
	"URL",
	"Unsupervised Learning",
	"Whitelist",
}
