package catalog

import "strings"

// Requests returns the request fixture catalog: 32 HTTP/1.1 requests
// covering method, header, body and URI variety. Payloads are exact;
// intentional oddities (stated Content-Length values that disagree
// with the body, obsolete folded headers, an out-of-date boundary) are
// part of the fixtures and must not be "fixed".
func Requests() Catalog {
	entries := []Entry{
		entry("01_simple_get.txt",
			"GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"),
		entry("02_get_with_headers.txt",
			"GET /api/users HTTP/1.1\r\nHost: api.example.com\r\nAccept: application/json\r\nAccept-Language: en-US,en;q=0.9\r\nUser-Agent: Mozilla/5.0 (Windows NT 10.0; Win64; x64)\r\nCache-Control: no-cache\r\n\r\n"),
		entry("03_post_small.txt",
			"POST /login HTTP/1.1\r\nHost: example.com\r\nContent-Type: application/x-www-form-urlencoded\r\nContent-Length: 29\r\n\r\nusername=admin&password=1234"),
		entry("04_post_json.txt",
			"POST /api/data HTTP/1.1\r\nHost: api.example.com\r\nContent-Type: application/json\r\nAccept: application/json\r\nContent-Length: 52\r\n\r\n{\"name\": \"John Doe\", \"email\": \"john@example.com\"}"),
		entry("05_put_request.txt",
			"PUT /api/users/123 HTTP/1.1\r\nHost: api.example.com\r\nContent-Type: application/json\r\nAuthorization: Bearer token123abc\r\nContent-Length: 67\r\n\r\n{\"id\": 123, \"name\": \"Jane Doe\", \"role\": \"admin\", \"active\": true}"),
		entry("06_delete_request.txt",
			"DELETE /api/users/456 HTTP/1.1\r\nHost: api.example.com\r\nAuthorization: Bearer secrettoken\r\nX-Request-ID: abc123\r\n\r\n"),
		entry("07_patch_request.txt",
			"PATCH /api/users/789 HTTP/1.1\r\nHost: api.example.com\r\nContent-Type: application/json-patch+json\r\nContent-Length: 34\r\n\r\n[{\"op\": \"replace\", \"path\": \"/name\"}]"),
		entry("08_head_request.txt",
			"HEAD /index.html HTTP/1.1\r\nHost: www.example.com\r\nAccept: text/html\r\n\r\n"),
		entry("09_options_request.txt",
			"OPTIONS /api/users HTTP/1.1\r\nHost: api.example.com\r\nOrigin: https://frontend.example.com\r\nAccess-Control-Request-Method: POST\r\nAccess-Control-Request-Headers: Content-Type, Authorization\r\n\r\n"),
		entry("10_get_query_params.txt",
			"GET /search?q=http+protocol&page=1&limit=20&sort=relevance HTTP/1.1\r\nHost: search.example.com\r\nAccept: application/json\r\nX-API-Key: api_key_12345\r\n\r\n"),
		entry("11_post_large.txt",
			"POST /api/documents HTTP/1.1\r\nHost: docs.example.com\r\nContent-Type: text/plain\r\nContent-Length: 1000\r\n\r\n"+strings.Repeat("A", 1000)),
		entry("12_get_with_cookies.txt",
			"GET /dashboard HTTP/1.1\r\nHost: app.example.com\r\nCookie: session_id=abc123def456; user_pref=dark_mode; tracking_id=xyz789\r\nAccept: text/html\r\n\r\n"),
		entry("13_post_multipart.txt",
			"POST /upload HTTP/1.1\r\nHost: files.example.com\r\nContent-Type: multipart/form-data; boundary=----WebKitFormBoundary7MA4YWxk\r\nContent-Length: 200\r\n\r\n------WebKitFormBoundary7MA4YWxk\r\nContent-Disposition: form-data; name=\"file\"; filename=\"test.txt\"\r\nContent-Type: text/plain\r\n\r\nHello World!\r\n------WebKitFormBoundary7MA4YWxk--\r\n"),
		entry("14_get_range.txt",
			"GET /video/large.mp4 HTTP/1.1\r\nHost: cdn.example.com\r\nRange: bytes=0-1023\r\nAccept: video/mp4\r\nIf-Range: \"etag123\"\r\n\r\n"),
		entry("15_post_compressed.txt",
			"POST /api/batch HTTP/1.1\r\nHost: api.example.com\r\nContent-Type: application/json\r\nContent-Encoding: gzip\r\nAccept-Encoding: gzip, deflate, br\r\nContent-Length: 85\r\n\r\n{\"items\": [{\"id\": 1}, {\"id\": 2}, {\"id\": 3}], \"operation\": \"update\", \"async\": true}"),
		entry("16_connect_request.txt",
			"CONNECT www.example.com:443 HTTP/1.1\r\nHost: www.example.com:443\r\nProxy-Authorization: Basic dXNlcjpwYXNz\r\nProxy-Connection: Keep-Alive\r\n\r\n"),
		entry("17_trace_request.txt",
			"TRACE /debug HTTP/1.1\r\nHost: example.com\r\nMax-Forwards: 5\r\n\r\n"),
		entry("18_long_uri.txt",
			"GET /"+strings.Repeat("a", 2000)+"?param=value HTTP/1.1\r\nHost: example.com\r\n\r\n"),
		entry("19_many_query_params.txt",
			"GET /api/search?"+numberedParams(50)+" HTTP/1.1\r\nHost: api.example.com\r\nAccept: application/json\r\n\r\n"),
		entry("20_duplicate_headers.txt",
			"GET /resource HTTP/1.1\r\nHost: example.com\r\nAccept: text/html\r\nAccept: application/xhtml+xml\r\nAccept: application/xml;q=0.9\r\nCache-Control: no-cache\r\nCache-Control: no-store\r\n\r\n"),
		entry("21_long_header_value.txt",
			"GET /api/data HTTP/1.1\r\nHost: example.com\r\nX-Custom-Data: "+strings.Repeat("x", 4000)+"\r\nAccept: application/json\r\n\r\n"),
		entry("22_many_headers.txt",
			"GET /api/resource HTTP/1.1\r\nHost: example.com\r\n"+numberedLines("X-Custom-Header-%d: value-%d", 50)+"\r\n"),
		entry("23_chunked_request.txt",
			"POST /api/stream HTTP/1.1\r\nHost: api.example.com\r\nContent-Type: application/json\r\nTransfer-Encoding: chunked\r\n\r\n7\r\n{\"data\":\r\n8\r\n\"hello\"}\r\n0\r\n\r\n"),
		entry("24_very_large_body.txt",
			"POST /api/bulk HTTP/1.1\r\nHost: api.example.com\r\nContent-Type: application/octet-stream\r\nContent-Length: 10000\r\n\r\n"+strings.Repeat("B", 10000)),
		entry("25_utf8_headers.txt",
			"GET /api/users HTTP/1.1\r\nHost: example.com\r\nX-User-Name: Jos√© Garc√≠a\r\nX-City: Êù±‰∫¨\r\nX-Emoji: \uf8ffüöÄ\uf8ffüî•\r\nAccept: application/json\r\n\r\n"),
		entry("26_url_encoded.txt",
			"GET /search?q=%E4%B8%AD%E6%96%87&filter=%3Cscript%3E&path=%2Fetc%2Fpasswd HTTP/1.1\r\nHost: example.com\r\nAccept: text/html\r\n\r\n"),
		entry("27_empty_header_values.txt",
			"GET /resource HTTP/1.1\r\nHost: example.com\r\nX-Empty-Header: \r\nX-Another-Empty: \r\nAccept: */*\r\n\r\n"),
		entry("28_folded_headers.txt",
			"GET /legacy HTTP/1.1\r\nHost: example.com\r\nX-Long-Header: this is a very long header value\r\n that continues on the next line\r\n and even a third line\r\nAccept: text/html\r\n\r\n"),
		binaryContentEntry(),
		entry("30_absolute_uri.txt",
			"GET http://proxy.example.com/path/to/resource?query=value HTTP/1.1\r\nHost: proxy.example.com\r\nProxy-Connection: keep-alive\r\n\r\n"),
		entry("31_expect_continue.txt",
			"POST /api/large-upload HTTP/1.1\r\nHost: api.example.com\r\nContent-Type: application/json\r\nContent-Length: 1048576\r\nExpect: 100-continue\r\n\r\n"),
		entry("32_complex_multipart.txt",
			"POST /api/upload-multiple HTTP/1.1\r\nHost: files.example.com\r\nContent-Type: multipart/form-data; boundary=---------------------------9051914041544843365972754266\r\nContent-Length: 554\r\n\r\n-----------------------------9051914041544843365972754266\r\nContent-Disposition: form-data; name=\"text_field\"\r\n\r\nsome text value\r\n-----------------------------9051914041544843365972754266\r\nContent-Disposition: form-data; name=\"file1\"; filename=\"document.txt\"\r\nContent-Type: text/plain\r\n\r\nThis is file 1 content.\r\n-----------------------------9051914041544843365972754266\r\nContent-Disposition: form-data; name=\"file2\"; filename=\"image.png\"\r\nContent-Type: image/png\r\n\r\nPNG_BINARY_DATA_HERE\r\n-----------------------------9051914041544843365972754266--\r\n"),
	}
	return Catalog{Name: "requests", Entries: entries}
}

// binaryContentEntry is the one payload that is not text: a POST whose
// body is every byte value 1-255 except NUL, LF and CR, ascending.
func binaryContentEntry() Entry {
	head := "POST /upload/binary HTTP/1.1\r\nHost: files.example.com\r\nContent-Type: application/octet-stream\r\nContent-Length: 253\r\n\r\n"
	payload := append([]byte(head), rawBytes()...)
	return Entry{Name: "29_binary_content.txt", Payload: payload}
}
