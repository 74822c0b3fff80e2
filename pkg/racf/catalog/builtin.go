// File: builtin.go
// Title: Built-in RACF Vocabulary
// Description: Registers the built-in RACF command language vocabulary:
//              commands with abbreviations, base keywords, flags,
//              segments with their keyword sets and common operand
//              literals, as documented in the RACF Command Language
//              Reference (SA22-7687).
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial built-in vocabulary

package catalog

// builtinCommands lists the administrative commands with their accepted
// abbreviations
var builtinCommands = []CommandInfo{
	// User administration
	{Name: "ADDUSER", Abbreviation: "AU", Description: "Create a new user profile"},
	{Name: "ALTUSER", Abbreviation: "ALU", Description: "Modify an existing user profile"},
	{Name: "DELUSER", Abbreviation: "DU", Description: "Delete a user profile"},
	{Name: "LISTUSER", Abbreviation: "LU", Description: "Display user profile information"},
	{Name: "PASSWORD", Abbreviation: "PW", Description: "Change user password"},

	// Group administration
	{Name: "ADDGROUP", Abbreviation: "AG", Description: "Create a new group profile"},
	{Name: "ALTGROUP", Abbreviation: "ALG", Description: "Modify an existing group profile"},
	{Name: "DELGROUP", Abbreviation: "DG", Description: "Delete a group profile"},
	{Name: "LISTGRP", Abbreviation: "LG", Description: "Display group profile information"},

	// Connect/remove
	{Name: "CONNECT", Abbreviation: "CO", Description: "Connect a user to a group"},
	{Name: "REMOVE", Abbreviation: "RE", Description: "Remove a user from a group"},

	// Dataset profiles
	{Name: "ADDSD", Abbreviation: "AD", Description: "Add a dataset profile"},
	{Name: "ALTDSD", Abbreviation: "ALD", Description: "Alter a dataset profile"},
	{Name: "DELDSD", Abbreviation: "DD", Description: "Delete a dataset profile"},
	{Name: "LISTDSD", Abbreviation: "LD", Description: "List dataset profile"},

	// General resources
	{Name: "RDEFINE", Abbreviation: "RDEF", Description: "Define a general resource profile"},
	{Name: "RALTER", Abbreviation: "RALT", Description: "Alter a general resource profile"},
	{Name: "RDELETE", Abbreviation: "RDEL", Description: "Delete a general resource profile"},
	{Name: "RLIST", Abbreviation: "RL", Description: "List a general resource profile"},

	// Permissions
	{Name: "PERMIT", Abbreviation: "PE", Description: "Add/change/delete access to a resource"},

	// System options
	{Name: "SETROPTS", Abbreviation: "SETR", Description: "Set RACF system options"},

	// Search
	{Name: "SEARCH", Abbreviation: "SR", Description: "Search the RACF database"},

	// Digital certificates
	{Name: "RACDCERT", Abbreviation: "", Description: "Administer digital certificates"},
}

// builtinFlags lists the pure boolean keywords; presence toggles the
// property and no parenthesized value follows
var builtinFlags = map[string]string{
	"ADSP":         "Automatic dataset protection",
	"NOADSP":       "No automatic dataset protection",
	"AUDITOR":      "User has auditor authority",
	"NOAUDITOR":    "User does not have auditor authority",
	"GRPACC":       "Group access for datasets",
	"NOGRPACC":     "No group access",
	"OIDCARD":      "Require operator ID card",
	"NOOIDCARD":    "No operator ID card required",
	"OPERATIONS":   "Operations authority",
	"NOOPERATIONS": "No operations authority",
	"RESTRICTED":   "Restricted user",
	"NORESTRICTED": "Not restricted",
	"ROAUDIT":      "Read-only auditor",
	"NOROAUDIT":    "Not read-only auditor",
	"SPECIAL":      "SPECIAL authority (full admin)",
	"NOSPECIAL":    "No SPECIAL authority",
	"NOPASSWORD":   "No password required",
	"NOCLAUTH":     "No class authority",

	// OMVS segment flags
	"AUTOUID":   "Automatically assign UID",
	"SHARED":    "UID can be shared",
	"NOMEMLIMIT": "No memory limit",
	"NOSHMEMMAX": "No shared memory limit",

	// KERB/ENCRYPT segment flags
	"DES":          "DES encryption",
	"NODES":        "No DES encryption",
	"DES3":         "Triple DES encryption",
	"NODES3":       "No triple DES encryption",
	"DESD":         "DES with derivation",
	"NODESD":       "No DES with derivation",
	"AES128":       "AES 128-bit encryption",
	"NOAES128":     "No AES 128-bit encryption",
	"AES256":       "AES 256-bit encryption",
	"NOAES256":     "No AES 256-bit encryption",
	"AES128SHA2":   "AES 128-bit SHA-2 encryption",
	"NOAES128SHA2": "No AES 128-bit SHA-2 encryption",
	"AES256SHA2":   "AES 256-bit SHA-2 encryption",
	"NOAES256SHA2": "No AES 256-bit SHA-2 encryption",

	// CICS segment flags
	"FORCE":   "Force sign-off on XRF takeover",
	"NOFORCE": "No forced sign-off",
}

// builtinKeywords lists the valued keywords of the base segment plus
// common operand literals shared across commands
var builtinKeywords = map[string]string{
	// Base segment keywords with values
	"ADDCATEGORY": "Security category list",
	"AUTHORITY":   "Group authority (USE, CREATE, CONNECT, JOIN)",
	"CLAUTH":      "Class authority list",
	"DATA":        "Installation-defined data (quoted string)",
	"DFLTGRP":     "Default group",
	"MODEL":       "Model dataset profile",
	"NAME":        "User name (quoted string)",
	"OWNER":       "Profile owner (userid or group)",
	"PASSWORD":    "Initial password",
	"PHRASE":      "Password phrase (quoted string)",
	"SECLABEL":    "Security label",
	"SECLEVEL":    "Security level",
	"UACC":        "Universal access (NONE, READ, UPDATE, CONTROL, ALTER)",

	// Access authorities
	"NONE":    "No access",
	"READ":    "Read access",
	"UPDATE":  "Read and write access",
	"CONTROL": "Control access (VSAM)",
	"ALTER":   "Full control including delete",

	// Group authorities
	"USE":    "Use group datasets",
	"CREATE": "Create datasets for group",
	"JOIN":   "Full group administration",

	// Common resource classes
	"DATASET":  "Dataset profiles",
	"FACILITY": "Facility class (system resources)",
	"TERMINAL": "Terminal profiles",
	"SDSF":     "SDSF class",
	"TAPEVOL":  "Tape volume profiles",
	"DASDVOL":  "DASD volume profiles",
	"JESSPOOL": "JES spool profiles",
	"JESJOBS":  "JES job profiles",
	"SURROGAT": "Surrogate class",
	"OPERCMDS": "Operator commands",
	"CONSOLE":  "Console class",

	// Shared operand keywords
	"CLASS":    "Resource class name",
	"ID":       "User or group ID list",
	"ACCESS":   "Access authority to grant",
	"AUDIT":    "Audit setting",
	"ALL":      "All profiles",
	"MASK":     "Search mask",
	"REFRESH":  "Refresh in-storage profiles",
	"HISTORY":  "Password history depth",
	"INTERVAL": "Password change interval",
	"CLASSACT": "Active class list",
	"RACLIST":  "RACLIST class list",
	"GID":      "Group identifier",
	"SUPGROUP": "Superior group",
}

// builtinSegments lists the profile segments with their keyword
// vocabularies. ENCRYPT nests inside KERB but registers as a segment in
// its own right so the nested invocation classifies correctly.
var builtinSegments = []SegmentInfo{
	{
		Name:        "OMVS",
		Description: "OMVS segment - z/OS UNIX settings",
		Keywords: map[string]string{
			"ASSIZEMAX":   "Maximum address space size",
			"AUTOUID":     "Automatically assign UID",
			"UID":         "User identifier (0-2147483647)",
			"SHARED":      "UID can be shared",
			"CPUTIMEMAX":  "Maximum CPU time (seconds)",
			"FILEPROCMAX": "Maximum files per process",
			"HOME":        "Home directory path (quoted)",
			"MEMLIMIT":    "Memory limit",
			"NOMEMLIMIT":  "No memory limit",
			"MMAPAREAMAX": "Maximum memory map area",
			"PROCUSERMAX": "Maximum processes per UID",
			"PROGRAM":     "Initial program (shell path, quoted)",
			"SHMEMMAX":    "Maximum shared memory",
			"NOSHMEMMAX":  "No shared memory limit",
			"THREADSMAX":  "Maximum threads per process",
		},
	},
	{
		Name:        "TSO",
		Description: "TSO segment - Time Sharing Option settings",
		Keywords: map[string]string{
			"ACCTNUM":   "Account number",
			"COMMAND":   "Command issued at logon",
			"DEST":      "Destination ID",
			"HOLDCLASS": "Hold class (single char)",
			"JOBCLASS":  "Job class (single char)",
			"MAXSIZE":   "Maximum region size (KB)",
			"MSGCLASS":  "Message class (single char)",
			"PROC":      "Logon procedure name",
			"SECLABEL":  "Security label",
			"SIZE":      "Default region size (KB)",
			"UNIT":      "Unit name",
			"USERDATA":  "User data",
		},
	},
	{
		Name:        "DFP",
		Description: "DFP segment - Data Facility Product settings",
		Keywords: map[string]string{
			"DATAAPPL": "Data application identifier",
			"DATACLAS": "Data class",
			"MGMTCLAS": "Management class",
			"STORCLAS": "Storage class",
		},
	},
	{
		Name:        "WHEN",
		Description: "WHEN segment - time/day restrictions",
		Keywords: map[string]string{
			"DAYS": "Permitted logon days",
			"TIME": "Permitted logon time window",
		},
	},
	{
		Name:        "KERB",
		Description: "KERB segment - Kerberos authentication",
		Keywords: map[string]string{
			"ENCRYPT":   "Permitted encryption types",
			"KERBNAME":  "Kerberos principal name",
			"MAXTKTLFE": "Maximum ticket lifetime (seconds)",
		},
	},
	{
		Name:        "ENCRYPT",
		Description: "ENCRYPT sub-segment - Kerberos encryption types",
		Keywords: map[string]string{
			"DES":          "DES encryption",
			"NODES":        "No DES encryption",
			"DES3":         "Triple DES encryption",
			"NODES3":       "No triple DES encryption",
			"DESD":         "DES with derivation",
			"NODESD":       "No DES with derivation",
			"AES128":       "AES 128-bit encryption",
			"NOAES128":     "No AES 128-bit encryption",
			"AES256":       "AES 256-bit encryption",
			"NOAES256":     "No AES 256-bit encryption",
			"AES128SHA2":   "AES 128-bit SHA-2 encryption",
			"NOAES128SHA2": "No AES 128-bit SHA-2 encryption",
			"AES256SHA2":   "AES 256-bit SHA-2 encryption",
			"NOAES256SHA2": "No AES 256-bit SHA-2 encryption",
		},
	},
	{
		Name:        "LANGUAGE",
		Description: "LANGUAGE segment - language preferences",
		Keywords: map[string]string{
			"PRIMARY":   "Primary language",
			"SECONDARY": "Secondary language",
		},
	},
	{
		Name:        "CICS",
		Description: "CICS segment - transaction processing settings",
		Keywords: map[string]string{
			"OPCLASS": "Operator classes",
			"OPIDENT": "Operator identifier",
			"OPPRTY":  "Operator priority",
			"RSLKEY":  "Resource security level keys",
			"TIMEOUT": "Terminal timeout (minutes)",
			"TSLKEY":  "Transaction security level keys",
			"XRFSOFF": "XRF sign-off setting",
		},
	},
	{
		Name:        "DCE",
		Description: "DCE segment - Distributed Computing Environment",
	},
	{
		Name:        "EIM",
		Description: "EIM segment - Enterprise Identity Mapping",
	},
	{
		Name:        "LNOTES",
		Description: "LNOTES segment - Lotus Notes",
	},
	{
		Name:        "NDS",
		Description: "NDS segment - Novell Directory Services",
	},
	{
		Name:        "NETVIEW",
		Description: "NETVIEW segment - network management",
	},
	{
		Name:        "OPERPARM",
		Description: "OPERPARM segment - operator parameters",
	},
	{
		Name:        "OVM",
		Description: "OVM segment - OpenExtensions",
	},
	{
		Name:        "PROXY",
		Description: "PROXY segment - LDAP proxy",
	},
	{
		Name:        "WORKATTR",
		Description: "WORKATTR segment - work attributes",
	},
}

// Builtin returns a catalog preloaded with the built-in RACF vocabulary
func Builtin(opts Options) *Catalog {
	c := New(opts)

	for _, cmd := range builtinCommands {
		// Built-in names are disjoint, registration cannot fail
		_ = c.RegisterCommand(cmd.Name, cmd.Abbreviation, cmd.Description)
	}
	for name, desc := range builtinKeywords {
		_ = c.RegisterKeyword(name, desc)
	}
	for name, desc := range builtinFlags {
		_ = c.RegisterFlag(name, desc)
	}
	for _, seg := range builtinSegments {
		_ = c.RegisterSegment(seg.Name, seg.Description, seg.Keywords)
	}

	return c
}
