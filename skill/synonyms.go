package skill

// synonymGroup 是一个规范技能及其文本变体。
type synonymGroup struct {
	canonical string
	variants  []string
}

// synonymTable 是静态同义词表。按顺序倒排：同一变体出现在多个分组时，后出现的分组生效。
var synonymTable = []synonymGroup{
	// 编程语言
	{"javascript", []string{"javascript", "js", "java script", "ecmascript"}},
	{"python", []string{"python", "py", "python3", "python programming"}},
	{"java", []string{"java", "java programming", "core java", "java se", "java ee"}},
	{"c#", []string{"c#", "csharp", "c sharp", ".net c#"}},
	{"c++", []string{"c++", "cpp", "c plus plus"}},
	{"php", []string{"php", "php development", "php programming"}},
	{"ruby", []string{"ruby", "ruby programming", "ruby on rails", "rails"}},
	{"swift", []string{"swift", "swift programming", "ios development"}},
	{"kotlin", []string{"kotlin", "kotlin programming", "android kotlin"}},
	{"go", []string{"go", "golang", "go programming"}},
	{"rust", []string{"rust", "rust programming"}},
	{"typescript", []string{"typescript", "ts", "type script"}},

	// 前端框架
	{"react", []string{"react", "reactjs", "react.js", "react js", "react native"}},
	{"angular", []string{"angular", "angularjs", "angular js", "angular 2+"}},
	{"vue", []string{"vue", "vuejs", "vue.js", "vue js"}},
	{"svelte", []string{"svelte", "sveltejs", "svelte framework"}},
	{"jquery", []string{"jquery", "jquery library"}},

	// 后端框架
	{"node.js", []string{"node.js", "nodejs", "node js", "node", "express.js", "expressjs"}},
	{"django", []string{"django", "django framework", "python django"}},
	{"flask", []string{"flask", "flask framework", "python flask"}},
	{"spring", []string{"spring", "spring boot", "spring framework", "java spring"}},
	{"laravel", []string{"laravel", "php laravel", "laravel framework"}},
	{"asp.net", []string{"asp.net", "asp net", "asp.net mvc", "asp.net core"}},

	// 移动开发
	{"flutter", []string{"flutter", "flutter framework", "flutter development", "dart flutter"}},
	{"react native", []string{"react native", "react-native", "reactnative"}},
	{"android", []string{"android", "android development", "android studio"}},
	{"ios", []string{"ios", "ios development", "swift ios", "objective-c"}},
	{"xamarin", []string{"xamarin", "xamarin forms", "xamarin.forms"}},

	// 数据库
	{"sql", []string{"sql", "structured query language", "sql queries"}},
	{"mysql", []string{"mysql", "my sql", "mysql database"}},
	{"postgresql", []string{"postgresql", "postgres", "postgres sql", "postgre"}},
	{"mongodb", []string{"mongodb", "mongo", "mongo db", "nosql"}},
	{"sqlite", []string{"sqlite", "sqlite3", "sql lite"}},
	{"oracle", []string{"oracle", "oracle database", "oracle db", "pl/sql"}},
	{"redis", []string{"redis", "redis cache", "redis database"}},
	{"firebase", []string{"firebase", "firebase database", "firestore"}},

	// DevOps 与云
	{"aws", []string{"aws", "amazon web services", "amazon aws", "ec2", "s3", "lambda"}},
	{"azure", []string{"azure", "microsoft azure", "azure cloud"}},
	{"gcp", []string{"gcp", "google cloud", "google cloud platform"}},
	{"docker", []string{"docker", "docker container", "containerization"}},
	{"kubernetes", []string{"kubernetes", "k8s", "k-8-s"}},
	{"jenkins", []string{"jenkins", "jenkins ci", "jenkins pipeline"}},
	{"git", []string{"git", "github", "gitlab", "git version control"}},
	{"terraform", []string{"terraform", "terraform iac", "hashicorp terraform"}},

	// Web
	{"html", []string{"html", "html5", "hypertext markup language"}},
	{"css", []string{"css", "css3", "cascading style sheets", "scss", "sass"}},
	{"bootstrap", []string{"bootstrap", "bootstrap framework", "bootstrap css"}},
	{"tailwind", []string{"tailwind", "tailwindcss", "tailwind css"}},
	{"web development", []string{"web development", "web dev", "website development", "frontend development", "backend development"}},
	{"responsive design", []string{"responsive design", "responsive web design", "mobile-first design"}},
	{"pwa", []string{"pwa", "progressive web app", "progressive web application"}},

	// 数据与 AI
	{"machine learning", []string{"machine learning", "ml", "machine learning algorithms"}},
	{"deep learning", []string{"deep learning", "dl", "neural networks", "cnn", "rnn", "lstm"}},
	{"data science", []string{"data science", "data scientist", "data analytics"}},
	{"data analysis", []string{"data analysis", "data analytics", "data analyst", "data visualization"}},
	{"tensorflow", []string{"tensorflow", "tf", "tensor flow"}},
	{"pytorch", []string{"pytorch", "torch", "py torch"}},
	{"scikit-learn", []string{"scikit-learn", "sklearn", "scikit learn"}},
	{"nlp", []string{"nlp", "natural language processing", "text analytics"}},
	{"computer vision", []string{"computer vision", "cv", "image processing", "image recognition"}},

	// 项目管理
	{"project management", []string{"project management", "project mgmt", "project manager", "project lead"}},
	{"agile", []string{"agile", "agile methodology", "scrum", "kanban", "sprint planning"}},
	{"jira", []string{"jira", "jira software", "atlassian jira"}},
	{"trello", []string{"trello", "trello board", "trello management"}},
	{"scrum master", []string{"scrum master", "scrum methodology", "agile scrum"}},
	{"product owner", []string{"product owner", "product management", "product backlog"}},

	// 商业与营销
	{"seo", []string{"seo", "search engine optimization", "search optimization"}},
	{"digital marketing", []string{"digital marketing", "online marketing", "internet marketing"}},
	{"content marketing", []string{"content marketing", "content strategy", "content creation"}},
	{"social media marketing", []string{"social media marketing", "social media management", "smm"}},
	{"email marketing", []string{"email marketing", "email campaigns", "newsletter management"}},
	{"crm", []string{"crm", "customer relationship management", "salesforce", "hubspot"}},

	// 设计
	{"ui design", []string{"ui design", "user interface design", "interface design"}},
	{"ux design", []string{"ux design", "user experience design", "usability"}},
	{"graphic design", []string{"graphic design", "visual design", "graphics"}},
	{"adobe photoshop", []string{"adobe photoshop", "photoshop", "ps"}},
	{"adobe illustrator", []string{"adobe illustrator", "illustrator", "ai"}},
	{"figma", []string{"figma", "figma design", "figma prototyping"}},
	{"sketch", []string{"sketch", "sketch app", "sketch design"}},

	// 软技能
	{"communication", []string{"communication", "communication skills", "verbal communication", "written communication"}},
	{"teamwork", []string{"teamwork", "team collaboration", "team player", "collaborative"}},
	{"leadership", []string{"leadership", "team leadership", "people management", "team management"}},
	{"problem solving", []string{"problem solving", "critical thinking", "analytical thinking", "analytical skills"}},
	{"time management", []string{"time management", "prioritization", "organizational skills"}},

	// 学历
	{"bachelor degree", []string{"bachelor degree", "bachelors", "undergraduate degree", "bs", "ba"}},
	{"master degree", []string{"master degree", "masters", "graduate degree", "ms", "ma", "mba"}},
	{"phd", []string{"phd", "doctorate", "doctoral degree", "ph.d", "doctor of philosophy"}},
	{"certification", []string{"certification", "professional certification", "industry certification", "certified"}},
}
