package help

const ColdstartYAML = `# algosensei Quick Start

inputs:
  file: "--file page.html (saved page)"
  url: "--url https://leetcode.com/problems/two-sum/ (fetched, cached when fetch.cache_dir is set)"
  stdin: "default when neither --file nor --url is given"

output_formats:
  yaml: "default"
  json: "--format json"

commands:
  problem: |
    algosensei problem --file two-sum.html

  code: |
    algosensei code --file two-sum.html

  page_utilities: |
    algosensei page html --file two-sum.html
    algosensei page text --file two-sum.html --readable
    curl -s https://leetcode.com/problems/two-sum/ | algosensei page info --page-url https://leetcode.com/problems/two-sum/

  native_host: |
    # Register the binary as a native messaging host, then the extension
    # sends {"type": "getProblem", "html": "...", "url": "..."} frames.
    algosensei serve

  settings: |
    algosensei settings show
    algosensei settings set --theme dark --sync-interval 30
    algosensei settings reset

  panel: |
    algosensei panel --url https://leetcode.com/problems/two-sum/

message_types:
  getProblem: "data: list of text chunks"
  getCodeComplexity: "data: {code, language, error?}"
  GET_PAGE_HTML: "html: full document"
  GET_PAGE_TEXT: "text: visible body text"
  GET_PAGE_INFO: "title, url, description"

config:
  file: "--config config.yaml or ALGOSENSEI_CONFIG"
  selectors: "override any selector under selectors: when the page markup changes"
`
