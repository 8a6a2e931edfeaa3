package stdlib

// py27Modules lists the Python 2.7 standard library.
var py27Modules = []string{
	"AL", "BaseHTTPServer", "Bastion", "CGIHTTPServer", "ConfigParser",
	"Cookie", "DocXMLRPCServer", "HTMLParser", "MimeWriter", "Queue",
	"SimpleHTTPServer", "SimpleXMLRPCServer", "SocketServer", "StringIO",
	"Tkinter", "UserDict", "UserList", "UserString", "abc", "aifc",
	"anydbm", "argparse", "array", "ast", "asynchat", "asyncore",
	"atexit", "audioop", "base64", "bdb", "binascii", "binhex",
	"bisect", "bsddb", "bz2", "cPickle", "cProfile", "cStringIO",
	"calendar", "cgi", "cgitb", "chunk", "cmath", "cmd", "code",
	"codecs", "codeop", "collections", "colorsys", "commands",
	"compileall", "contextlib", "cookielib", "copy", "copy_reg",
	"crypt", "csv", "ctypes", "datetime", "dbm", "decimal",
	"difflib", "dircache", "dis", "distutils", "doctest", "dumbdbm",
	"dummy_thread", "dummy_threading", "email", "encodings", "errno",
	"exceptions", "fcntl", "filecmp", "fileinput", "fnmatch",
	"formatter", "fpformat", "fractions", "ftplib", "functools",
	"future_builtins", "gc", "getopt", "getpass", "gettext", "glob",
	"grp", "gzip", "hashlib", "heapq", "hmac", "hotshot", "htmlentitydefs",
	"htmllib", "httplib", "imaplib", "imghdr", "imp", "importlib",
	"imputil", "inspect", "io", "itertools", "json", "keyword",
	"linecache", "locale", "logging", "macpath", "mailbox", "mailcap",
	"marshal", "math", "md5", "mimetools", "mimetypes", "mimify",
	"mmap", "modulefinder", "multifile", "multiprocessing", "mutex",
	"netrc", "new", "nis", "nntplib", "ntpath", "numbers", "operator",
	"optparse", "os", "ossaudiodev", "parser", "pdb", "pickle",
	"pickletools", "pipes", "pkgutil", "platform", "plistlib", "popen2",
	"poplib", "posixfile", "posixpath", "pprint", "profile", "pstats",
	"pty", "pwd", "py_compile", "pyclbr", "pydoc", "quopri", "random",
	"re", "readline", "repr", "resource", "rexec", "rfc822", "rlcompleter",
	"robotparser", "runpy", "sched", "select", "sets", "sgmllib", "sha",
	"shelve", "shlex", "shutil", "signal", "site", "smtpd", "smtplib",
	"sndhdr", "socket", "spwd", "sqlite3", "ssl", "stat", "statvfs",
	"string", "stringprep", "struct", "subprocess", "sunau", "symbol",
	"symtable", "sys", "sysconfig", "syslog", "tabnanny", "tarfile",
	"telnetlib", "tempfile", "termios", "test", "textwrap", "thread",
	"threading", "time", "timeit", "token", "tokenize", "trace",
	"traceback", "tty", "types", "unicodedata", "unittest", "urllib",
	"urllib2", "urlparse", "user", "uu", "uuid", "warnings", "wave",
	"weakref", "webbrowser", "whichdb", "wsgiref", "xdrlib", "xml",
	"xmlrpclib", "zipfile", "zipimport", "zlib",
}

// py3BaseModules lists the Python 3.5 standard library; later versions
// are derived from it by small additions and removals.
var py3BaseModules = []string{
	"abc", "aifc", "argparse", "array", "ast", "asynchat", "asyncio",
	"asyncore", "atexit", "audioop", "base64", "bdb", "binascii",
	"binhex", "bisect", "builtins", "bz2", "calendar", "cgi", "cgitb",
	"chunk", "cmath", "cmd", "code", "codecs", "codeop", "collections",
	"colorsys", "compileall", "concurrent", "configparser", "contextlib",
	"copy", "copyreg", "crypt", "csv", "ctypes", "curses", "datetime",
	"dbm", "decimal", "difflib", "dis", "distutils", "doctest", "email",
	"encodings", "ensurepip", "enum", "errno", "faulthandler", "fcntl",
	"filecmp", "fileinput", "fnmatch", "formatter", "fractions",
	"ftplib", "functools", "gc", "getopt", "getpass", "gettext", "glob",
	"grp", "gzip", "hashlib", "heapq", "hmac", "html", "http",
	"imaplib", "imghdr", "imp", "importlib", "inspect", "io",
	"ipaddress", "itertools", "json", "keyword", "lib2to3", "linecache",
	"locale", "logging", "lzma", "macpath", "mailbox", "mailcap",
	"marshal", "math", "mimetypes", "mmap", "modulefinder", "msilib",
	"multiprocessing", "netrc", "nis", "nntplib", "ntpath", "numbers",
	"operator", "optparse", "os", "ossaudiodev", "parser", "pathlib",
	"pdb", "pickle", "pickletools", "pipes", "pkgutil", "platform",
	"plistlib", "poplib", "posixpath", "pprint", "profile", "pstats",
	"pty", "pwd", "py_compile", "pyclbr", "pydoc", "queue", "quopri",
	"random", "re", "readline", "reprlib", "resource", "rlcompleter",
	"runpy", "sched", "select", "selectors", "shelve", "shlex",
	"shutil", "signal", "site", "smtpd", "smtplib", "sndhdr", "socket",
	"socketserver", "spwd", "sqlite3", "ssl", "stat", "statistics",
	"string", "stringprep", "struct", "subprocess", "sunau", "symbol",
	"symtable", "sys", "sysconfig", "syslog", "tabnanny", "tarfile",
	"telnetlib", "tempfile", "termios", "test", "textwrap", "threading",
	"time", "timeit", "tkinter", "token", "tokenize", "trace",
	"traceback", "tracemalloc", "tty", "turtle", "types", "typing",
	"unicodedata", "unittest", "urllib", "uu", "uuid", "venv",
	"warnings", "wave", "weakref", "webbrowser", "wsgiref", "xdrlib",
	"xml", "xmlrpc", "zipapp", "zipfile", "zipimport", "zlib",
}
